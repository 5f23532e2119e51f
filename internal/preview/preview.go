// Package preview renders still thumbnails of effects for the gallery.
package preview

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/registry"
)

const (
	DefaultWidth  = 180
	DefaultHeight = 120
	DefaultWarmup = 5
)

// Renderer produces one thumbnail per call from a fresh effect instance.
type Renderer struct {
	Width, Height int
	Warmup        int
	// Backdate moves the start time into the past so timed effects are
	// already under way.
	Backdate time.Duration
	WorldW   float64
	WorldH   float64
	Seed     int64
	Now      func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Warmup:   DefaultWarmup,
		Backdate: time.Second,
		WorldW:   effect.DefaultWidth,
		WorldH:   effect.DefaultHeight,
		Seed:     1,
		Now:      time.Now,
	}
}

func (r *Renderer) env() effect.Env {
	return effect.NewEnv(r.WorldW, r.WorldH, r.Seed)
}

// Generate renders entry after Warmup updates. A panic inside the effect
// is returned as an error.
func (r *Renderer) Generate(e registry.Entry) (img *image.RGBA, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("preview %q: %v", e.Name, p)
		}
	}()

	fx := e.New(r.env())
	fx.Start(r.Now().Add(-r.Backdate))
	for i := 0; i < r.Warmup; i++ {
		fx.Update()
	}

	ras := canvas.NewRaster(r.Width, r.Height, r.WorldW, r.WorldH)
	ras.Fill(canvas.Black)
	fx.Draw(ras)
	out := ras.Image()
	Border(out, canvas.Gray)
	return out, nil
}

// Border draws a one pixel frame around img.
func Border(img draw.Image, c canvas.Color) {
	b := img.Bounds()
	u := image.NewUniform(c.NRGBA())
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
		image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y),
		image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(img, r, u, image.Point{}, draw.Src)
	}
}
