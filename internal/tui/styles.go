package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	tile     lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	equation lipgloss.Style
	hint     lipgloss.Style
	bar      lipgloss.Style
	row      lipgloss.Style
	rowOn    lipgloss.Style
	value    lipgloss.Style
	hud      lipgloss.Style
	metric   lipgloss.Style
	rec      lipgloss.Style
	help     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		tile:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted),
		selected: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(t.Accent),
		label:    lipgloss.NewStyle().Foreground(t.Text),
		equation: lipgloss.NewStyle().Foreground(t.Muted),
		hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		bar:      lipgloss.NewStyle().Foreground(t.Text),
		row:      lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 2),
		rowOn:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Primary).Padding(0, 2),
		value:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		hud: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 1),
		metric: lipgloss.NewStyle().Foreground(t.Secondary),
		rec:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		help: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Primary).
			Padding(0, 2),
	}
}

// gradientText colours each rune of text along a blend from start to end.
func gradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}
	var s strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLuv(b, t).Clamped()
		s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return s.String()
}

func progressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
