package src

import "github.com/codeloom-ai/codeloom/src/ui"

func (m *model) View() string {
	return ui.Render(m.uiState(), m.style)
}

func (m *model) viewHeader() string {
	return ui.Header(m.style)
}

func (m *model) viewFooter() string {
	return ui.Footer(m.uiState(), m.style)
}

func (m *model) uiState() ui.State {
	return ui.State{
		Mode:         m.mode,
		WorkingDir:   m.working,
		Provider:     m.providerSel.Title(),
		Model:        m.modelName,
		ProjectCount: m.projectCount,
		IsThinking:   m.isThinking,
		ThinkingText: m.thinking,
		DirList:      m.dirlist,
		List:         m.list,
		TextArea:     m.textarea,
		Viewport:     m.viewport,
		Spinner:      m.spinner,
	}
}
