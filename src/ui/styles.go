package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header       lipgloss.Style
	Subtitle     lipgloss.Style
	List         lipgloss.Style
	ListHeader   lipgloss.Style
	ListSelected lipgloss.Style
	Textarea     lipgloss.Style
	Help         lipgloss.Style
	Footer       lipgloss.Style
	Accent       lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Thinking     lipgloss.Style
	Status       lipgloss.Style
	Subtle       lipgloss.Style
}

// Palette: amber primary, teal for selections and success, red for errors.
const (
	colorPrimary = "#F2A65A"
	colorTeal    = "#4FD6BE"
	colorError   = "#FF5C5C"
	colorGray    = "#999999"
	colorFaint   = "#777777"
)

func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555")).
			Faint(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Padding(0, 1),

		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorPrimary)),

		ListHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)).
			Bold(true).
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTeal)).
			Bold(true),

		Textarea: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorPrimary)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFaint)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFaint)).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTeal)).
			Bold(true),

		Thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTeal)),

		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(colorPrimary)).
			Foreground(lipgloss.Color("#1A1A1A")).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)),
	}
}
