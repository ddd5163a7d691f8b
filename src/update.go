package src

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeloom-ai/codeloom/src/provider"
	"github.com/codeloom-ai/codeloom/src/ui"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.viewHeader())
		footerHeight := lipgloss.Height(m.viewFooter())
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.width-2, m.height-headerHeight-footerHeight-2)
		m.dirlist.SetSize(m.width, m.height-headerHeight-footerHeight-2)
		m.textarea.SetWidth(m.width - 2)
		m.viewport.Width = m.width - 2
		m.viewport.Height = m.height - headerHeight - footerHeight - m.textarea.Height() - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {

		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+d":
			m.prevMode = m.mode
			m.mode = ui.ModeDir
			return m, nil

		case "ctrl+p":
			if m.mode == ui.ModeChat {
				m.mode = ui.ModeProvider
				m.list.Title = "Providers"
				m.list.SetItems(m.providerItems())
			}
			return m, nil

		case "left":
			if m.mode == ui.ModeDir {
				parent := filepath.Dir(m.working)
				if parent != m.working {
					m.working = parent
					m.dirlist.SetItems(loadDirs(m.working))
					m.dirlist.Select(0)
				}
				return m, nil
			}
			if m.mode == ui.ModeModel {
				m.mode = ui.ModeProvider
				m.list.Title = "Providers"
				m.list.SetItems(m.providerItems())
				return m, nil
			}

		case "esc":
			switch m.mode {
			case ui.ModeModel, ui.ModeKey:
				m.mode = ui.ModeProvider
				m.list.Title = "Providers"
				m.list.SetItems(m.providerItems())
				m.textarea.Reset()
				m.textarea.Placeholder = "Describe the project you want built..."
			case ui.ModeDir:
				m.mode = m.prevMode
			}
			return m, nil

		case "enter":
			switch m.mode {

			case ui.ModeProvider:
				if i, ok := m.list.SelectedItem().(providerItem); ok {
					m.providerSel = i.p
					if !i.configured {
						m.mode = ui.ModeKey
						m.textarea.Reset()
						m.textarea.Placeholder = fmt.Sprintf("Paste your %s API key...", i.p.Title())
						m.textarea.Focus()
						return m, nil
					}
					m.enterModelPicker()
				}
				return m, nil

			case ui.ModeKey:
				key := strings.TrimSpace(m.textarea.Value())
				if key == "" {
					return m, nil
				}
				// A pasted key that clearly belongs to another provider
				// re-routes instead of getting saved under the wrong name.
				if det := provider.Detect(key); det != provider.Unknown {
					m.providerSel = det
				}
				if err := m.store.SetKey(m.providerSel, key); err != nil {
					m.output += m.style.Error.Render(fmt.Sprintf("❌ %v\n", err))
					m.renderOutput(true)
				}
				m.textarea.Reset()
				m.textarea.Placeholder = "Describe the project you want built..."
				m.enterModelPicker()
				return m, nil

			case ui.ModeModel:
				if i, ok := m.list.SelectedItem().(modelItem); ok {
					m.modelName = string(i)
					m.enterChat()
				}
				return m, nil

			case ui.ModeDir:
				item, ok := m.dirlist.SelectedItem().(dirItem)
				if !ok {
					return m, nil
				}
				if strings.HasPrefix(item.name, "✅") {
					if m.client != nil {
						m.mode = ui.ModeChat
					} else {
						m.mode = ui.ModeProvider
					}
					return m, nil
				}
				if item.name == "⬆️ ../" {
					parent := filepath.Dir(m.working)
					if parent != m.working {
						m.working = parent
						m.dirlist.SetItems(loadDirs(m.working))
						m.dirlist.Select(0)
					}
					return m, nil
				}
				if info, err := os.Stat(item.path); err == nil && info.IsDir() {
					m.working = item.path
					m.dirlist.SetItems(loadDirs(m.working))
					m.dirlist.Select(0)
				}
				return m, nil

			case ui.ModeChat:
				raw := strings.TrimSpace(m.textarea.Value())
				if raw == "" {
					return m, nil
				}
				return m.runPrompt(raw)
			}
		}

	case generateMsg:
		m.isThinking = false
		if msg.projectMade {
			m.projectCount++
		}
		if msg.err != nil {
			m.output += m.style.Error.Render(fmt.Sprintf("❌ %v\n", msg.err))
		} else {
			m.output += msg.text
			if msg.text != "" && !strings.HasSuffix(msg.text, "\n") {
				m.output += "\n"
			}
		}
		m.renderOutput(true)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case ui.ModeDir:
		m.dirlist, cmd = m.dirlist.Update(msg)
	case ui.ModeProvider, ui.ModeModel:
		m.list, cmd = m.list.Update(msg)
	case ui.ModeKey, ui.ModeChat:
		var taCmd, vpCmd tea.Cmd
		m.textarea, taCmd = m.textarea.Update(msg)
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmd = tea.Batch(taCmd, vpCmd)
	}

	if m.isThinking {
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmd = tea.Batch(cmd, spinnerCmd)
	}
	return m, cmd
}

func (m *model) enterModelPicker() {
	m.mode = ui.ModeModel
	m.list.Title = fmt.Sprintf("Models · %s", m.providerSel.Title())
	m.list.SetItems(modelItems(m.providerSel))
	m.list.Select(0)
}

func (m *model) enterChat() {
	key, _ := m.store.Key(m.providerSel)
	client, err := provider.NewClient(m.providerSel, key)
	if err != nil {
		m.output += m.style.Error.Render(fmt.Sprintf("❌ %v\n", err))
		m.mode = ui.ModeProvider
		return
	}
	m.client = client
	m.mode = ui.ModeChat
	m.textarea.Focus()
	m.renderOutput(false)
}

func (m *model) runPrompt(raw string) (*model, tea.Cmd) {
	m.textarea.Reset()
	m.output += m.style.Accent.Render("You: ") + raw + "\n\n"
	m.renderOutput(true)

	m.isThinking = true
	wantsFiles := provider.WantsFiles(raw)
	if wantsFiles {
		m.thinking = "weaving files"
	} else {
		m.thinking = "thinking"
	}

	// Captured here: Update keeps mutating the model while the command
	// goroutine runs.
	ctx, client, modelName := m.ctx, m.client, m.modelName
	engine, tracker := m.engine, m.tracker
	dir := ProjectDir(m.working, "")
	cmd := func() tea.Msg {
		if !wantsFiles {
			resp, err := client.Complete(ctx, modelName, raw)
			if err != nil {
				return generateMsg{err: err}
			}
			return generateMsg{text: m.style.Accent.Render(modelName+":") + "\n" + resp + "\n"}
		}

		res, err := RunGenerate(ctx, client, modelName, raw, engine, tracker, GenerateOptions{
			ProjectDir: dir,
			Overwrite:  true,
		})
		if err != nil {
			return generateMsg{err: err}
		}
		return generateMsg{text: m.renderActions(res, modelName), projectMade: true}
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// renderActions formats a generation result for the transcript.
func (m *model) renderActions(res *GenerateResult, modelName string) string {
	var out strings.Builder
	out.WriteString(m.style.Accent.Render(modelName+":") + "\n")
	out.WriteString("\n---\n")
	out.WriteString(m.style.Subtle.Render(fmt.Sprintf("📁 %s\n", res.ProjectDir)))

	for _, action := range res.Actions {
		switch action.Action {
		case "saved":
			out.WriteString(m.style.Success.Render(fmt.Sprintf("💾 Saved %s\n", action.Path)))
			if strings.TrimSpace(action.Diff) != "" {
				out.WriteString(m.style.Subtle.Render("```diff") + "\n")
				out.WriteString(action.Diff)
				out.WriteString(m.style.Subtle.Render("```") + "\n")
			}
		case "skipped":
			out.WriteString(m.style.Subtle.Render(fmt.Sprintf("⏭️ Skipped %s (%s)\n", action.Path, action.Message)))
		case "archived":
			out.WriteString(m.style.Success.Render(fmt.Sprintf("📦 Archived %s (%s)\n", action.Path, action.Message)))
		case "error":
			msg := action.Message
			if action.Err != nil {
				msg = fmt.Sprintf("%s: %v", msg, action.Err)
			}
			out.WriteString(m.style.Error.Render(fmt.Sprintf("❌ %s %s\n", action.Path, msg)))
		case "info":
			out.WriteString(m.style.Subtle.Render(fmt.Sprintf("ℹ️ %s\n", action.Message)))
		}
	}

	if tree := res.Extraction.Tree; tree.Len() > 0 {
		out.WriteString("\n" + RenderFileTree(tree.Paths()) + "\n")
	}
	return out.String()
}
