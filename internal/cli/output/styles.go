package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0AF68")),
		Header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7")),
		Error:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E")),
		Muted:  lr.NewStyle().Foreground(lipgloss.Color("#565F89")),
	}
}
