// Package window is the desktop front end: the gallery, settings panel and
// playback drawn with ebiten.
package window

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/saverium/internal/app"
	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/gallery"
	"github.com/san-kum/saverium/internal/playback"
)

type mode int

const (
	modeGallery mode = iota
	modeSettings
	modePlaying
)

const (
	pageRows = 4
	// basicfont glyphs are 7px wide.
	glyphW     = 7
	lineHeight = 16
)

type Game struct {
	ctx     *app.Context
	ctrl    *playback.Controller
	grid    gallery.Grid
	browser *gallery.Browser
	panel   *gallery.Panel
	mode    mode
	width   int
	height  int

	labels  *labels
	frame   *ebiten.Image
	surface *Surface
	thumbs  map[int]*ebiten.Image
	protos  map[int]effect.Effect
	quit    bool
}

func NewGame(ctx *app.Context) *Game {
	n := ctx.Registry.Len()
	grid := gallery.DefaultGrid(n)
	w, h := ctx.Config.Window.Width, ctx.Config.Window.Height
	frame := ebiten.NewImage(w, h)
	return &Game{
		ctx:     ctx,
		ctrl:    ctx.Controller,
		grid:    grid,
		browser: gallery.NewBrowser(n, grid.Columns, pageRows),
		panel:   gallery.NewPanel(ctx.Settings),
		width:   w,
		height:  h,
		labels:  newLabels(),
		frame:   frame,
		surface: NewSurface(frame, ctx.Env.Width, ctx.Env.Height),
		thumbs:  make(map[int]*ebiten.Image),
		protos:  make(map[int]effect.Effect),
	}
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(ctx *app.Context) error {
	ebiten.SetWindowSize(ctx.Config.Window.Width, ctx.Config.Window.Height)
	ebiten.SetWindowTitle(gallery.Title)
	ebiten.SetTPS(ctx.Config.Display.FPS)

	err := ebiten.RunGame(NewGame(ctx))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Layout(int, int) (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	switch g.mode {
	case modeGallery:
		g.updateGallery()
	case modeSettings:
		g.updateSettings()
	case modePlaying:
		g.updatePlaying()
	}
	return nil
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) updateGallery() {
	b := g.browser
	switch {
	case pressed(ebiten.KeyEscape):
		g.quit = true
	case pressed(ebiten.KeyS):
		g.mode = modeSettings
	case pressed(ebiten.KeyArrowLeft):
		b.Move(-1, 0)
	case pressed(ebiten.KeyArrowRight):
		b.Move(1, 0)
	case pressed(ebiten.KeyArrowUp):
		b.Move(0, -1)
	case pressed(ebiten.KeyArrowDown):
		b.Move(0, 1)
	case pressed(ebiten.KeyPageUp):
		b.PageUp()
	case pressed(ebiten.KeyPageDown):
		b.PageDown()
	case pressed(ebiten.KeyHome):
		b.Home()
	case pressed(ebiten.KeyEnd):
		b.End()
	case pressed(ebiten.KeyEnter):
		g.play(b.Cursor())
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		if i := tileAt(g.grid, g.browser, x, y); i >= 0 {
			g.play(i)
		}
	}
}

func (g *Game) updateSettings() {
	switch {
	case pressed(ebiten.KeyEscape, ebiten.KeyS):
		g.mode = modeGallery
	case pressed(ebiten.KeyArrowUp):
		g.panel.Up()
	case pressed(ebiten.KeyArrowDown):
		g.panel.Down()
	case pressed(ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyEnter):
		g.panel.Change()
	}
}

func (g *Game) updatePlaying() {
	switch {
	case pressed(ebiten.KeyEscape):
		g.stop()
		return
	case pressed(ebiten.KeySpace):
		g.ctrl.Skip()
	}

	x, y := ebiten.CursorPosition()
	p := toWorld(x, y, g.width, g.height, g.ctx.Env.Width, g.ctx.Env.Height)
	g.ctrl.Pointer(p)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(p)
	}
	g.ctrl.Tick(g.surface)
}

func (g *Game) play(i int) {
	if err := g.ctrl.Select(i); err != nil {
		log.Printf("window: %v", err)
		return
	}
	g.mode = modePlaying
}

func (g *Game) stop() {
	if i := g.ctrl.Index(); i >= 0 {
		g.browser.SetCursor(i)
	}
	g.ctrl.Stop()
	g.mode = modeGallery
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(canvas.Black.NRGBA())
	switch g.mode {
	case modeGallery:
		g.drawGallery(screen)
	case modeSettings:
		g.drawSettings(screen)
	case modePlaying:
		screen.DrawImage(g.frame, nil)
		g.drawOverlay(screen)
	}
}

// tileAt maps a cursor position to an absolute registry index on the
// browser's current page, or -1.
func tileAt(grid gallery.Grid, b *gallery.Browser, x, y int) int {
	start, end := b.Visible()
	grid.Count = end - start
	i := grid.IndexAt(x, y)
	if i < 0 {
		return -1
	}
	return start + i
}

// toWorld maps window pixels to world coordinates.
func toWorld(x, y, w, h int, worldW, worldH float64) canvas.Point {
	return canvas.Pt(float64(x)*worldW/float64(w), float64(y)*worldH/float64(h))
}

func (g *Game) say(dst *ebiten.Image, s string, x, y, scale float64, c canvas.Color, align align) {
	g.labels.draw(dst, s, x, y, scale, c, align)
}

func (g *Game) thumb(i int) *ebiten.Image {
	if img, ok := g.thumbs[i]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(g.ctx.Previews.Get(g.ctx.Registry.At(i)))
	g.thumbs[i] = img
	return img
}

func (g *Game) proto(i int) effect.Effect {
	if fx, ok := g.protos[i]; ok {
		return fx
	}
	fx := g.ctx.Registry.At(i).New(g.ctx.Env)
	g.protos[i] = fx
	return fx
}

func (g *Game) drawGallery(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	g.say(screen, gallery.Title, cx, 30, 3, canvas.White, alignCenter)
	g.say(screen, gallery.Subtitle(g.browser.Count()), cx, 80, 1, canvas.LightGray, alignCenter)

	start, end := g.browser.Visible()
	for i := start; i < end; i++ {
		g.drawTile(screen, i, g.grid.Rect(i-start), i == g.browser.Cursor())
	}

	footer := "Enter/click: play   S: settings   PgUp/PgDn: page   Q: quit"
	if g.browser.Pages() > 1 {
		footer = pageLabel(g.browser) + "   " + footer
	}
	g.say(screen, footer, cx, float64(g.height-30), 1, canvas.Gray, alignCenter)
}

func (g *Game) drawTile(screen *ebiten.Image, i int, r image.Rectangle, selected bool) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	if g.ctx.Settings.ShowPreview {
		img := g.thumb(i)
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(screen, x, y, w, h, canvas.DarkGray.NRGBA(), false)
		vector.StrokeRect(screen, x, y, w, h, 2, canvas.LightGray.NRGBA(), false)
	}
	if selected {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, canvas.Blue.NRGBA(), false)
	}

	entry := g.ctx.Registry.At(i)
	lines := gallery.Wrap(entry.Name, r.Dx()/glyphW-1, gallery.MaxLines)
	ly := float64(r.Max.Y) - float64(len(lines)*lineHeight) - 4
	vector.DrawFilledRect(screen, x, float32(ly)-2, w, float32(len(lines)*lineHeight)+6, canvas.Black.WithAlpha(160).NRGBA(), false)
	mid := float64(r.Min.X) + float64(r.Dx())/2
	for j, line := range lines {
		g.say(screen, line, mid, ly+float64(j*lineHeight), 1, canvas.White, alignCenter)
	}

	if gallery.IsMath(entry.Name) {
		if eq, ok := gallery.EquationFor(g.proto(i)); ok {
			g.say(screen, clip(eq, r.Dx()/glyphW), mid, float64(r.Min.Y)+4, 1, canvas.Green, alignCenter)
		}
	}
}

func (g *Game) drawSettings(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	g.say(screen, "Settings", cx, 40, 3, canvas.White, alignCenter)

	x := float32(200)
	w := float32(g.width) - 2*x
	for i, row := range g.panel.Rows() {
		y := float32(150 + i*60)
		if i == g.panel.Selected() {
			vector.StrokeRect(screen, x, y, w, 45, 2, canvas.Blue.NRGBA(), false)
		} else {
			vector.DrawFilledRect(screen, x, y, w, 45, canvas.DarkGray.NRGBA(), false)
		}
		g.say(screen, row.Label, float64(x)+20, float64(y)+15, 1, canvas.White, alignStart)
		g.say(screen, "< "+g.panel.Value(i)+" >", float64(x+w)-20, float64(y)+15, 1, canvas.Green, alignEnd)
	}
	g.say(screen, "Up/Down: select   Left/Right/Enter: change   Esc: back", cx, float64(g.height-60), 1, canvas.Gray, alignCenter)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	fx := g.ctrl.Current()
	if fx == nil {
		return
	}
	lines := overlayLines(fx, g.ctx.Settings)
	vector.DrawFilledRect(screen, 5, 5, 260, float32(len(lines)*lineHeight)+10, canvas.Black.WithAlpha(150).NRGBA(), false)
	for i, line := range lines {
		g.say(screen, line, 12, float64(10+i*lineHeight), 1, canvas.White, alignStart)
	}
}

// overlayLines describes the playing effect. The duration is the effect's
// own, which differs from the settings when entry durations are in use.
func overlayLines(fx effect.Effect, s *config.Settings) []string {
	return gallery.Overlay(fx.Name(), s.PlayMode.Title(), fx.Duration())
}

func pageLabel(b *gallery.Browser) string {
	return fmt.Sprintf("Page %d/%d", b.Page()+1, b.Pages())
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
