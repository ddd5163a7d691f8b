package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const Logo = `
 ██████╗ ██████╗ ██████╗ ███████╗██╗      ██████╗  ██████╗ ███╗   ███╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝██║     ██╔═══██╗██╔═══██╗████╗ ████║
██║     ██║   ██║██║  ██║█████╗  ██║     ██║   ██║██║   ██║██╔████╔██║
██║     ██║   ██║██║  ██║██╔══╝  ██║     ██║   ██║██║   ██║██║╚██╔╝██║
╚██████╗╚██████╔╝██████╔╝███████╗███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
 ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝
            W E A V E   C H A T   I N T O   P R O J E C T S
`

// Render generates the full UI string for the given state.
func Render(s State, styles Styles) string {
	header := Header(styles)
	body := renderBody(s, styles)
	footer := Footer(s, styles)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Header renders the fixed chrome above the body. Exported so the model can
// measure it on window resizes.
func Header(styles Styles) string {
	// Set and unset the background so the spaces inside the logo stay
	// transparent and only the glyphs pick up the color.
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorPrimary)).Bold(true).
		Background(lipgloss.Color("#000000")).UnsetBackground()
	subtitle := styles.Header.Render("codeloom")

	return lipgloss.JoinVertical(lipgloss.Left, logoStyle.Render(Logo), subtitle)
}

// Footer renders the help line for the current mode.
func Footer(s State, styles Styles) string {
	help := "ctrl+c: quit"
	switch s.Mode {
	case ModeDir:
		help += " | enter: select | ←/↑/↓/→: navigate"
	case ModeProvider, ModeModel:
		help += " | enter: select | esc: back"
	case ModeChat:
		help += " | ctrl+p: provider | ctrl+d: directory"
	}
	return styles.Footer.Render(help)
}

func renderBody(s State, styles Styles) string {
	switch s.Mode {
	case ModeDir:
		return renderDir(s, styles)
	case ModeProvider, ModeModel:
		return styles.List.Render(s.List.View())
	case ModeKey:
		return renderKey(s, styles)
	case ModeChat:
		return renderChat(s, styles)
	default:
		return ""
	}
}

func renderDir(s State, styles Styles) string {
	pathHeader := styles.Subtitle.Render(fmt.Sprintf("Projects will be created under: %s", s.WorkingDir))
	return lipgloss.JoinVertical(lipgloss.Left, pathHeader, s.DirList.View())
}

func renderKey(s State, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ListHeader.Render(fmt.Sprintf("API key for %s", s.Provider)),
		styles.Subtle.Render("Paste the key; its shape also picks the provider on the setup screen."),
		s.TextArea.View(),
		styles.Help.Render("enter: save | esc: cancel"),
	)
}

func renderChat(s State, styles Styles) string {
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Status.Render(fmt.Sprintf("%s · %s", s.Provider, s.Model)),
		styles.Subtle.Render(fmt.Sprintf("  projects this session: %d", s.ProjectCount)),
	)
	meta := styles.Subtitle.Render(fmt.Sprintf("Output Directory: %s", s.WorkingDir))

	return lipgloss.JoinVertical(lipgloss.Left,
		meta,
		s.Viewport.View(),
		status,
		renderThinking(s, styles),
		s.TextArea.View(),
	)
}

func renderThinking(s State, styles Styles) string {
	if !s.IsThinking {
		return ""
	}
	return styles.Thinking.Render(fmt.Sprintf("loom %s %s", s.Spinner.View(), s.ThinkingText))
}
