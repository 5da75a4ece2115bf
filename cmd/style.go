package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders headings and highlights for one output stream. Escape
// codes are only emitted when that stream is a terminal.
type styles struct {
	title   lipgloss.Style
	ongoing lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		ongoing: r.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   r.NewStyle().Faint(true),
	}
}
