// Package tui is the terminal front end: a thumbnail gallery, the
// settings panel and full-screen playback.
package tui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/san-kum/saverium/internal/app"
	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/gallery"
	"github.com/san-kum/saverium/internal/playback"
)

type mode int

const (
	modeGallery mode = iota
	modePlaying
	modeSettings
)

const (
	thumbCols = 18
	thumbRows = 6
	// border + thumbnail + two label lines + equation
	tileW = thumbCols + 2
	tileH = thumbRows + 2 + gallery.MaxLines + 1

	headerLines = 3
	// blank, status, hints
	footerLines = 3
	hudWidth    = 36
	frameWindow = 120
)

type Options struct {
	Profile  termenv.Profile
	Renderer string
	Theme    string
	FPS      int
	HUD      bool
	GIFDir   string
}

type tickMsg struct {
	gen int
	at  time.Time
}

type Model struct {
	ctx  *app.Context
	ctrl *playback.Controller
	opts Options

	mode          mode
	prev          mode
	width, height int

	browser *gallery.Browser
	panel   *gallery.Panel
	grid    gallery.Grid
	protos  map[int]effect.Effect

	raster  *canvas.Raster
	braille *canvas.Braille

	theme Theme
	st    styles
	hud   bool
	help  bool

	rec       *canvas.Recorder
	recording bool

	frameTimes []float64
	gen        int
	status     string
}

func NewModel(ctx *app.Context, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Renderer == "" {
		opts.Renderer = "halfblock"
	}
	if opts.GIFDir == "" {
		opts.GIFDir = "."
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		ctx:     ctx,
		ctrl:    ctx.Controller,
		opts:    opts,
		width:   80,
		height:  24,
		browser: gallery.NewBrowser(ctx.Registry.Len(), 1, 1),
		panel:   gallery.NewPanel(ctx.Settings),
		protos:  make(map[int]effect.Effect),
		theme:   theme,
		st:      newStyles(theme),
		hud:     opts.HUD,
		rec:     canvas.NewRecorder(),
	}
	m.raster = canvas.NewRaster(1, 1, ctx.Env.Width, ctx.Env.Height)
	m.layout()
	if m.ctrl.State() == playback.Playing {
		m.mode = modePlaying
	}
	return m
}

// Run starts the program in the alternate screen with mouse reporting.
func Run(ctx *app.Context, opts Options) error {
	m := NewModel(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.mode == modePlaying {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// canvasSize is the playing area in cells.
func (m Model) canvasSize() (cols, rows int) {
	cols, rows = m.width, m.height-1
	if m.hud {
		cols -= hudWidth + 2
	}
	return max(cols, 1), max(rows, 1)
}

// layout recomputes everything that depends on the terminal size.
func (m *Model) layout() {
	cols, rows := m.canvasSize()
	if m.opts.Renderer == "braille" {
		m.raster.Resize(cols*2, rows*4)
		m.braille = canvas.NewBraille(cols, rows)
	} else {
		m.raster.Resize(cols, rows*2)
	}

	perRow := max(m.width/(tileW+1), 1)
	perCol := max((m.height-headerLines-footerLines)/tileH, 1)
	m.browser.Resize(perRow, perCol)
	m.grid = gallery.Grid{
		OriginX: 0, OriginY: headerLines,
		Columns: perRow,
		CellW:   tileW - 1, CellH: tileH - 1,
		PadX: 2, PadY: 1,
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		if msg.gen != m.gen || m.mode != modePlaying {
			return m, nil
		}
		m.frame()
		return m, m.tick()
	}
	return m, nil
}

// frame advances playback by one frame and records its cost.
func (m *Model) frame() {
	start := time.Now()
	m.ctrl.Tick(m.raster)
	if m.recording {
		m.rec.Capture(m.raster.Image())
	}
	ms := float64(time.Since(start).Microseconds()) / 1000
	m.frameTimes = append(m.frameTimes, ms)
	if len(m.frameTimes) > frameWindow {
		m.frameTimes = m.frameTimes[len(m.frameTimes)-frameWindow:]
	}
}

func (m Model) play(i int) (Model, tea.Cmd) {
	if err := m.ctrl.Select(i); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.mode = modePlaying
	m.gen++
	m.frameTimes = m.frameTimes[:0]
	return m, m.tick()
}

func (m Model) stop() Model {
	if i := m.ctrl.Index(); i >= 0 {
		m.browser.SetCursor(i)
	}
	m.ctrl.Stop()
	m.mode = modeGallery
	m.gen++
	if m.recording {
		m = m.saveGIF()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		if m.recording {
			m = m.saveGIF()
		}
		return m, tea.Quit
	}
	if m.help {
		m.help = false
		return m, nil
	}
	switch key {
	case "?":
		m.help = true
		return m, nil
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		return m, nil
	}

	switch m.mode {
	case modeGallery:
		return m.galleryKey(key)
	case modeSettings:
		return m.settingsKey(key)
	default:
		return m.playingKey(key)
	}
}

func (m Model) galleryKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		return m, tea.Quit
	case "up", "k":
		m.browser.Move(0, -1)
	case "down", "j":
		m.browser.Move(0, 1)
	case "left", "h":
		m.browser.Move(-1, 0)
	case "right", "l":
		m.browser.Move(1, 0)
	case "pgup":
		m.browser.PageUp()
	case "pgdown":
		m.browser.PageDown()
	case "home":
		m.browser.Home()
	case "end":
		m.browser.End()
	case "enter":
		if m.browser.Count() > 0 {
			return m.play(m.browser.Cursor())
		}
	case "r":
		if m.browser.Count() > 0 {
			return m.play(m.ctrl.Rand.Intn(m.browser.Count()))
		}
	case "s":
		m.prev, m.mode = m.mode, modeSettings
	}
	return m, nil
}

func (m Model) settingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "s":
		m.mode = m.prev
		if m.mode == modePlaying {
			m.gen++
			return m, m.tick()
		}
	case "up", "k":
		m.panel.Up()
	case "down", "j":
		m.panel.Down()
	case "left", "right", "enter", "h", "l":
		m.panel.Change()
	}
	return m, nil
}

func (m Model) playingKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		return m.stop(), nil
	case " ", "space":
		m.ctrl.Skip()
	case "s":
		m.prev, m.mode = m.mode, modeSettings
	case "i":
		m.hud = !m.hud
		m.layout()
	case "b":
		if m.opts.Renderer == "braille" {
			m.opts.Renderer = "halfblock"
		} else {
			m.opts.Renderer = "braille"
		}
		m.layout()
	case "g":
		if m.recording {
			m = m.saveGIF()
		} else {
			m.rec.Reset()
			m.recording = true
			m.status = "recording"
		}
	}
	return m, nil
}

func (m Model) saveGIF() Model {
	m.recording = false
	path := fmt.Sprintf("%s/saverium-%s.gif", m.opts.GIFDir, time.Now().Format("20060102-150405"))
	if err := m.rec.Save(path); err != nil {
		log.Printf("tui: %v", err)
		m.status = "gif: " + err.Error()
	} else {
		log.Printf("tui: saved %d frames to %s", m.rec.Len(), path)
		m.status = "saved " + path
	}
	m.rec.Reset()
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeGallery:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.browser.Move(0, -1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.browser.Move(0, 1)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if i := m.tileAt(msg.X, msg.Y); i >= 0 {
				m.browser.SetCursor(i)
				return m.play(i)
			}
		}
	case modePlaying:
		p, ok := m.toWorld(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			m.ctrl.Pointer(p)
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.ctrl.Click(p)
			}
		}
	}
	return m, nil
}

// tileAt maps a terminal cell to a registry index on the current page.
func (m Model) tileAt(x, y int) int {
	start, end := m.browser.Visible()
	g := m.grid
	g.Count = end - start
	i := g.IndexAt(x, y)
	if i < 0 {
		return -1
	}
	return start + i
}

// toWorld maps a terminal cell to the centre of that cell in effect
// coordinates.
func (m Model) toWorld(x, y int) (canvas.Point, bool) {
	cols, rows := m.canvasSize()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return canvas.Point{}, false
	}
	w, h := m.raster.Size()
	return canvas.Pt((float64(x)+0.5)/float64(cols)*w, (float64(y)+0.5)/float64(rows)*h), true
}

// proto is a cached instance used for tile equations, so they do not
// change on every redraw.
func (m Model) proto(i int) effect.Effect {
	if fx, ok := m.protos[i]; ok {
		return fx
	}
	fx := m.ctx.Registry.At(i).New(m.ctx.Env)
	m.protos[i] = fx
	return fx
}
