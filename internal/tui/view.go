package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/gallery"
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modePlaying:
		body = m.playingView()
	case modeSettings:
		body = m.settingsView()
	default:
		body = m.galleryView()
	}
	if m.help {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpView())
	}
	return body
}

func (m Model) header() string {
	title := gradientText(gallery.Title, m.theme.Primary, m.theme.Secondary)
	sub := gallery.Subtitle(m.ctx.Registry.Len())
	if pages := m.browser.Pages(); pages > 1 {
		sub += fmt.Sprintf(" • page %d/%d", m.browser.Page()+1, pages)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.st.subtitle.Render(sub), "")
}

func (m Model) galleryView() string {
	var rows []string
	start, end := m.browser.Visible()
	var line []string
	for i := start; i < end; i++ {
		line = append(line, m.tile(i))
		if len(line) == m.browser.Columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(line)...))
			line = nil
		}
	}
	if len(line) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(line)...))
	}
	if len(rows) == 0 {
		rows = append(rows, m.st.hint.Render("no effects loaded"))
	}

	footer := m.st.hint.Render("←↑↓→ move • enter/click play • r random • s settings • t theme • ? help • esc quit")
	if m.status != "" {
		footer = m.st.bar.Render(m.status) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), strings.Join(rows, "\n"), "", footer)
}

// spaced puts one blank column between tiles.
func spaced(tiles []string) []string {
	out := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, t)
	}
	return out
}

func (m Model) tile(i int) string {
	e := m.ctx.Registry.At(i)
	var thumb string
	if m.ctx.Settings.ShowPreview {
		thumb = canvas.HalfBlock(m.ctx.Previews.Get(e), thumbCols, thumbRows, m.opts.Profile)
	} else {
		thumb = strings.TrimRight(strings.Repeat(strings.Repeat(" ", thumbCols)+"\n", thumbRows), "\n")
	}

	lines := gallery.Wrap(e.Name, thumbCols, gallery.MaxLines)
	for len(lines) < gallery.MaxLines {
		lines = append(lines, "")
	}
	var label []string
	for _, l := range lines {
		label = append(label, m.st.label.Width(thumbCols).Align(lipgloss.Center).Render(l))
	}
	eq := ""
	if gallery.IsMath(e.Name) {
		if s, ok := gallery.EquationFor(m.proto(i)); ok {
			eq = runewidth.Truncate(s, thumbCols, "…")
		}
	}
	label = append(label, m.st.equation.Width(thumbCols).Align(lipgloss.Center).Render(eq))

	content := lipgloss.JoinVertical(lipgloss.Left, thumb, strings.Join(label, "\n"))
	if i == m.browser.Cursor() {
		return m.st.selected.Render(content)
	}
	return m.st.tile.Render(content)
}

func (m Model) settingsView() string {
	var rows []string
	for i, r := range m.panel.Rows() {
		text := lipgloss.JoinHorizontal(lipgloss.Top,
			m.st.label.Width(28).Render(r.Label),
			m.st.value.Width(12).Align(lipgloss.Right).Render(m.panel.Value(i)))
		if i == m.panel.Selected() {
			rows = append(rows, m.st.rowOn.Render("◀ "+text+" ▶"))
		} else {
			rows = append(rows, m.st.row.Render("  "+text+"  "))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gradientText("Settings", m.theme.Primary, m.theme.Secondary),
		"",
		strings.Join(rows, "\n"),
		"",
		m.st.hint.Render("↑↓ select • ←→/enter change • esc back"),
	)
}

func (m Model) canvasView() string {
	cols, rows := m.canvasSize()
	if m.opts.Renderer == "braille" && m.braille != nil {
		m.braille.Load(m.raster.Image(), 0.08)
		return strings.TrimRight(m.braille.Render(m.opts.Profile), "\n")
	}
	return canvas.HalfBlock(m.raster.Image(), cols, rows, m.opts.Profile)
}

func (m Model) playingView() string {
	fx := m.ctrl.Current()
	if fx == nil {
		return m.galleryView()
	}
	view := m.canvasView()
	if m.hud {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, m.hudView())
	}

	over := gallery.Overlay(fx.Name(), m.ctx.Settings.PlayMode.Title(), fx.Duration())
	bar := strings.Join(over, " │ ")
	if m.recording {
		bar = m.st.rec.Render("● REC ") + bar
	} else if m.status != "" {
		bar = m.status + " │ " + bar
	}
	return view + "\n" + m.st.bar.MaxWidth(m.width).Render(bar)
}

func (m Model) hudView() string {
	fx := m.ctrl.Current()
	var s strings.Builder
	s.WriteString(m.st.title.Render(fx.Name()) + "\n\n")

	left := m.ctrl.Remaining()
	frac := 1 - float64(left)/float64(fx.Duration())
	s.WriteString(progressBar(frac, hudWidth-8) + fmt.Sprintf(" %4.1fs\n", left.Seconds()))

	if len(m.frameTimes) > 1 {
		chart := asciigraph.Plot(m.frameTimes, asciigraph.Height(6), asciigraph.Width(hudWidth-8), asciigraph.Caption("frame ms"))
		s.WriteString("\n" + m.st.metric.Render(chart) + "\n")
	}

	s.WriteString("\n")
	row := func(k, v string) { s.WriteString(m.st.subtitle.Width(12).Render(k) + m.st.label.Render(v) + "\n") }
	row("Effect", fmt.Sprintf("%d/%d", m.ctrl.Index()+1, m.ctx.Registry.Len()))
	row("Mode", m.ctx.Settings.PlayMode.Title())
	row("Auto", onOff(m.ctx.Settings.AutoAdvance))
	row("Renderer", m.opts.Renderer)
	row("Theme", m.theme.Name)
	if len(m.frameTimes) > 0 {
		row("Frame", fmt.Sprintf("%.2fms", m.frameTimes[len(m.frameTimes)-1]))
	}
	if m.recording {
		row("GIF", fmt.Sprintf("%d frames", m.rec.Len()))
	}
	s.WriteString("\n" + m.st.hint.Render("space skip • i hud • b braille\ng gif • s settings • esc menu"))
	_, rows := m.canvasSize()
	return m.st.hud.Width(hudWidth).Height(rows).Render(s.String())
}

func (m Model) helpView() string {
	return m.st.help.Render(strings.Join([]string{
		"KEYBOARD SHORTCUTS",
		"",
		"Gallery",
		"  arrows/hjkl  move        enter  play",
		"  pgup/pgdown  page        r      random",
		"  s            settings    esc    quit",
		"",
		"Playing",
		"  space        next        esc    gallery",
		"  i            hud         b      braille",
		"  g            gif record  s      settings",
		"",
		"Anywhere",
		"  t  theme   ?  help   q  quit",
	}, "\n"))
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
