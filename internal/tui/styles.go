package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/backdrop/internal/render"
)

type styles struct {
	canvas    lipgloss.Style
	stats     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	graph     lipgloss.Style
	help      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	recording lipgloss.Style
}

func newStyles(t render.Theme) styles {
	return styles{
		canvas:    lipgloss.NewStyle().Padding(1, 2),
		stats:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(statsWidth),
		header:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		graph:     lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		help:      lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		paused:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		recording: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")).Blink(true),
	}
}
