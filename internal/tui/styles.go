package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	dimmer   lipgloss.Style
	active   lipgloss.Style
	lineNo   lipgloss.Style
	annot    lipgloss.Style
	node     lipgloss.Style
	cursor   lipgloss.Style
	pointer  lipgloss.Style
	carry    lipgloss.Style
	playing  lipgloss.Style
	paused   lipgloss.Style
	errText  lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		dim:    lipgloss.NewStyle().Foreground(t.Muted),
		dimmer: lipgloss.NewStyle().Foreground(t.Faint),
		active: lipgloss.NewStyle().Bold(true).
			Foreground(t.Primary).
			Background(lipgloss.Color("#1a1a2a")),
		lineNo:   lipgloss.NewStyle().Foreground(t.Faint),
		annot:    lipgloss.NewStyle().Italic(true).Foreground(t.Accent),
		node:     lipgloss.NewStyle().Foreground(t.Text),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0a0a0a")).Background(t.Primary),
		pointer:  lipgloss.NewStyle().Foreground(t.Primary),
		carry:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		playing:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		errText:  lipgloss.NewStyle().Foreground(t.Error),
		barFull:  lipgloss.NewStyle().Foreground(t.Secondary),
		barEmpty: lipgloss.NewStyle().Foreground(t.Faint),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Faint).
			Padding(0, 1),
	}
}

// progressBar renders done/total as a bar of the given width.
func (s styles) progressBar(done, total, width int) string {
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	filled = max(0, min(filled, width))
	return s.barFull.Render(strings.Repeat("━", filled)) +
		s.barEmpty.Render(strings.Repeat("─", width-filled))
}

func (s styles) separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return s.dimmer.Render(left + " ◆ " + right)
}
