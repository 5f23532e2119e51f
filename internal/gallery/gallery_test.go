package gallery

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
)

func TestGridRoundTrip(t *testing.T) {
	g := DefaultGrid(40)
	for i := 0; i < g.Count; i++ {
		p := g.PositionOf(i)
		if got := g.IndexAt(p.X, p.Y); got != i {
			t.Fatalf("IndexAt(PositionOf(%d)) = %d", i, got)
		}
		r := g.Rect(i)
		if got := g.IndexAt(r.Max.X, r.Max.Y); got != i {
			t.Errorf("far corner of %d resolved to %d", i, got)
		}
	}
}

func TestGridPositions(t *testing.T) {
	g := DefaultGrid(30)
	tests := []struct {
		i, x, y int
	}{
		{0, 30, 120},
		{1, 225, 120},
		{5, 1005, 120},
		{6, 30, 255},
		{13, 225, 390},
	}
	for _, tt := range tests {
		p := g.PositionOf(tt.i)
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("PositionOf(%d) = %v, want (%d,%d)", tt.i, p, tt.x, tt.y)
		}
	}
	if g.Rows() != 5 {
		t.Errorf("rows = %d", g.Rows())
	}
}

func TestGridMisses(t *testing.T) {
	g := DefaultGrid(7)
	tests := []struct {
		name string
		x, y int
	}{
		{"above", 40, 100},
		{"left", 10, 130},
		{"padding", 30 + 180 + 5, 130},
		{"row padding", 40, 120 + 120 + 5},
		{"past count", g.PositionOf(8).X + 1, g.PositionOf(8).Y + 1},
		{"past columns", 30 + 6*195 + 1, 130},
	}
	for _, tt := range tests {
		if got := g.IndexAt(tt.x, tt.y); got != -1 {
			t.Errorf("%s: IndexAt = %d, want -1", tt.name, got)
		}
	}
}

func TestBrowserPaging(t *testing.T) {
	b := NewBrowser(30, 6, 2)
	if b.Pages() != 3 {
		t.Fatalf("pages = %d", b.Pages())
	}
	b.Move(1, 0)
	b.Move(0, 1)
	if b.Cursor() != 7 {
		t.Errorf("cursor = %d, want 7", b.Cursor())
	}
	b.PageDown()
	if b.Cursor() != 19 || b.Page() != 1 {
		t.Errorf("after page down: cursor %d page %d", b.Cursor(), b.Page())
	}
	if s, e := b.Visible(); s != 12 || e != 24 {
		t.Errorf("visible = %d..%d", s, e)
	}
	b.End()
	if s, e := b.Visible(); s != 24 || e != 30 {
		t.Errorf("last page = %d..%d", s, e)
	}
	b.Move(0, 1)
	if b.Cursor() != 29 {
		t.Errorf("moving past the last row changed the cursor to %d", b.Cursor())
	}
	b.Move(1, 0)
	if b.Cursor() != 29 {
		t.Errorf("cursor ran past the end: %d", b.Cursor())
	}
	b.Home()
	b.Move(-1, 0)
	b.PageUp()
	if b.Cursor() != 0 {
		t.Errorf("cursor ran before the start: %d", b.Cursor())
	}
}

func TestBrowserEmpty(t *testing.T) {
	b := NewBrowser(0, 6, 4)
	b.Move(1, 1)
	b.End()
	if b.Cursor() != 0 || b.Pages() != 1 {
		t.Errorf("cursor %d pages %d", b.Cursor(), b.Pages())
	}
	if s, e := b.Visible(); s != 0 || e != 0 {
		t.Errorf("visible = %d..%d", s, e)
	}
}

func TestPanelCycles(t *testing.T) {
	s := config.DefaultSettings()
	p := NewPanel(&s)

	p.Up()
	if p.Selected() != 3 {
		t.Fatalf("up from the top should wrap, got %d", p.Selected())
	}
	p.Down()

	p.Change()
	if s.PlayMode != config.Sequential || p.Value(0) != "Sequential" {
		t.Errorf("play mode = %s", s.PlayMode)
	}
	p.Change()
	if s.PlayMode != config.Random {
		t.Errorf("play mode did not wrap: %s", s.PlayMode)
	}

	p.Down()
	var seen []string
	for i := 0; i < 5; i++ {
		p.Change()
		seen = append(seen, p.Value(1))
	}
	if want := []string{"8", "10", "15", "3", "5"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("durations = %v, want %v", seen, want)
	}
	if s.Duration() != 5*time.Second {
		t.Errorf("duration = %v", s.Duration())
	}

	p.Down()
	p.Change()
	if s.AutoAdvance || p.Value(2) != "Off" {
		t.Error("auto advance did not toggle")
	}
	p.Down()
	p.Change()
	if s.ShowPreview {
		t.Error("show preview did not toggle")
	}
}

func TestPanelOffListDuration(t *testing.T) {
	tests := []struct {
		ms    int
		shown string
		next  int
	}{
		{4500, "4.5", 5000},
		{7000, "7", 8000},
		{15000, "15", 3000},
		{16000, "16", 3000},
		{1000, "1", 3000},
	}
	for _, tt := range tests {
		s := config.Settings{PlayMode: config.Random, DurationMS: tt.ms}
		p := NewPanel(&s)
		p.Down()
		if got := p.Value(1); got != tt.shown {
			t.Errorf("%dms shown as %q, want %q", tt.ms, got, tt.shown)
		}
		p.Change()
		if s.DurationMS != tt.next {
			t.Errorf("%dms advanced to %d, want %d", tt.ms, s.DurationMS, tt.next)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  []string
	}{
		{"Matrix Rain", 20, []string{"Matrix Rain"}},
		{"Trigonometric Function Wave Variation 3", 16, []string{"Trigonometric", "Function Wave"}},
		{"Cosmic Dance", 6, []string{"Cosmic", "Dance"}},
		{"", 10, nil},
	}
	for _, tt := range tests {
		if got := Wrap(tt.name, tt.width, MaxLines); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
		}
	}
	for _, line := range Wrap("Supercalifragilistic Effect", 8, MaxLines) {
		if runewidth.StringWidth(line) > 8 {
			t.Errorf("line %q wider than 8", line)
		}
	}
}

type plain struct{ effect.Base }

type live struct{ effect.Base }

func (*live) Equation() string { return "f(x) = 1.00x + 0.0" }

func TestEquationFor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mk := func(name string) effect.Effect {
		return &plain{effect.NewBase(name, time.Second, rng)}
	}
	tests := []struct {
		fx   effect.Effect
		want string
		ok   bool
	}{
		{mk("Oscillating Quadratic"), "f(x) = ax² + bx + c", true},
		{mk("Logarithmic Function Variation 2"), "f(x) = a * log_b(x) + c", true},
		{mk("Function Soup"), "", false},
		{mk("Matrix Rain"), "", false},
		{&live{effect.NewBase("Animated Linear Function", time.Second, rng)}, "f(x) = 1.00x + 0.0", true},
	}
	for _, tt := range tests {
		got, ok := EquationFor(tt.fx)
		if got != tt.want || ok != tt.ok {
			t.Errorf("EquationFor(%s) = %q, %v", tt.fx.Name(), got, ok)
		}
	}
}

func TestOverlay(t *testing.T) {
	got := Overlay("Matrix Rain", "Sequential", 8*time.Second)
	if got[0] != "Current: Matrix Rain" || got[4] != "Duration: 8s" {
		t.Errorf("overlay = %q", got)
	}
	if Subtitle(42) != "Click to preview • 42 total" {
		t.Errorf("subtitle = %q", Subtitle(42))
	}
}
