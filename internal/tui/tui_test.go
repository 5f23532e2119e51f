package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/san-kum/saverium/internal/app"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/playback"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Registry.Sources = []string{"math", "kinetic"}
	cfg.Registry.Variations = 0
	cfg.Registry.Seed = 3
	cfg.Preview.Width, cfg.Preview.Height = 36, 24
	ctx, err := app.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ctx.Close() })
	m := NewModel(ctx, Options{Profile: termenv.Ascii, GIFDir: t.TempDir()})
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGalleryLayout(t *testing.T) {
	m := newTestModel(t)
	if m.browser.Columns != 100/(tileW+1) {
		t.Errorf("columns = %d", m.browser.Columns)
	}
	view := m.View()
	if !strings.Contains(view, "9 total") {
		t.Errorf("subtitle missing from view:\n%s", view)
	}
	if !strings.Contains(view, "f(x) =") {
		t.Error("math tiles should show an equation")
	}
}

func TestEnterPlaysAndEscReturns(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("right"))
	m = send(m, key("enter"))
	if m.mode != modePlaying || m.ctrl.State() != playback.Playing {
		t.Fatalf("mode = %v, state = %v", m.mode, m.ctrl.State())
	}
	if m.ctrl.Index() != 1 {
		t.Errorf("index = %d, want 1", m.ctrl.Index())
	}

	m = send(m, tickMsg{gen: m.gen})
	if len(m.frameTimes) != 1 {
		t.Errorf("frames = %d", len(m.frameTimes))
	}
	if !strings.Contains(m.View(), "Current: ") {
		t.Error("overlay missing")
	}

	m = send(m, key("esc"))
	if m.mode != modeGallery || m.ctrl.State() != playback.Idle {
		t.Fatalf("esc did not return to gallery: %v", m.mode)
	}
	if m.browser.Cursor() != 1 {
		t.Errorf("cursor = %d", m.browser.Cursor())
	}
}

func TestStaleTicksAreIgnored(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("enter"))
	old := m.gen
	m = send(m, key("esc"))
	m = send(m, key("enter"))
	m = send(m, tickMsg{gen: old})
	if len(m.frameTimes) != 0 {
		t.Error("tick from a previous session advanced playback")
	}
}

func TestSpaceSkips(t *testing.T) {
	m := newTestModel(t)
	m.ctx.Settings.PlayMode = config.Sequential
	m = send(m, key("enter"))
	m = send(m, key("space"))
	if m.ctrl.Index() != 1 {
		t.Errorf("index after skip = %d", m.ctrl.Index())
	}
}

func TestSettingsPanel(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("s"))
	if m.mode != modeSettings {
		t.Fatal("s should open settings")
	}
	m = send(m, key("enter"))
	if m.ctx.Settings.PlayMode != config.Sequential {
		t.Errorf("play mode = %s", m.ctx.Settings.PlayMode)
	}
	m = send(m, key("down"))
	m = send(m, key("right"))
	if m.ctx.Settings.DurationMS != 8000 {
		t.Errorf("duration = %d", m.ctx.Settings.DurationMS)
	}
	if !strings.Contains(m.View(), "Duration (seconds)") {
		t.Error("panel rows missing")
	}
	m = send(m, key("esc"))
	if m.mode != modeGallery {
		t.Errorf("esc from settings went to %v", m.mode)
	}
}

func TestMouseSelectsTile(t *testing.T) {
	m := newTestModel(t)
	x := (tileW + 1) * 2
	m = send(m, tea.MouseMsg{X: x + 3, Y: headerLines + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.mode != modePlaying || m.ctrl.Index() != 2 {
		t.Fatalf("click did not play tile 2: mode %v index %d", m.mode, m.ctrl.Index())
	}
}

func TestTileAtMisses(t *testing.T) {
	m := newTestModel(t)
	if i := m.tileAt(tileW, headerLines+1); i != -1 {
		t.Errorf("gap column hit tile %d", i)
	}
	if i := m.tileAt(1, 0); i != -1 {
		t.Errorf("header hit tile %d", i)
	}
}

func TestToWorld(t *testing.T) {
	m := newTestModel(t)
	cols, rows := m.canvasSize()
	p, ok := m.toWorld(cols/2, rows/2)
	if !ok {
		t.Fatal("centre cell rejected")
	}
	if p.X < 500 || p.X > 700 || p.Y < 300 || p.Y > 500 {
		t.Errorf("centre maps to %v", p)
	}
	if _, ok := m.toWorld(cols, 0); ok {
		t.Error("cell outside the canvas accepted")
	}
}

func TestHUDAndRenderers(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("enter"))
	for i := 0; i < 3; i++ {
		m = send(m, tickMsg{gen: m.gen})
	}
	m = send(m, key("i"))
	if !m.hud {
		t.Fatal("i should toggle the hud")
	}
	if !strings.Contains(m.View(), "frame ms") {
		t.Error("hud chart missing")
	}
	m = send(m, key("b"))
	if m.opts.Renderer != "braille" || m.braille == nil {
		t.Fatal("b should switch to braille")
	}
	m = send(m, tickMsg{gen: m.gen})
	if m.View() == "" {
		t.Error("empty braille view")
	}
}

func TestGIFRecording(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("enter"))
	m = send(m, key("g"))
	m = send(m, tickMsg{gen: m.gen})
	m = send(m, tickMsg{gen: m.gen})
	if m.rec.Len() != 2 {
		t.Fatalf("recorded %d frames", m.rec.Len())
	}
	m = send(m, key("g"))
	if m.recording || !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(t)
	first := m.theme.Name
	for range Themes {
		m = send(m, key("t"))
	}
	if m.theme.Name != first {
		t.Errorf("theme after full cycle = %s", m.theme.Name)
	}
	if NextTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestGalleryFitsTerminalWithStatus(t *testing.T) {
	for _, h := range []int{17, 27, 28, 38, 39} {
		for _, status := range []string{"", "saved ./saverium-x.gif"} {
			m := newTestModel(t)
			m = send(m, tea.WindowSizeMsg{Width: 100, Height: h})
			m.status = status
			if n := strings.Count(m.View(), "\n") + 1; n > h {
				t.Errorf("height %d, status %q: view is %d lines", h, status, n)
			}
		}
	}
}
