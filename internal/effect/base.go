package effect

import (
	"math/rand"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
)

const PaletteSize = 20

// Base carries the bookkeeping shared by all effects. Concrete effects
// embed it and override Update and Draw.
type Base struct {
	name     string
	duration time.Duration
	start    time.Time
	palette  []canvas.Color
}

func NewBase(name string, d time.Duration, rng *rand.Rand) Base {
	return Base{name: name, duration: d, palette: Palette(rng)}
}

func (b *Base) Name() string            { return b.name }
func (b *Base) SetName(name string)     { b.name = name }
func (b *Base) Duration() time.Duration { return b.duration }

// SetDuration ignores non-positive durations.
func (b *Base) SetDuration(d time.Duration) {
	if d > 0 {
		b.duration = d
	}
}

func (b *Base) Start(now time.Time)                 { b.start = now }
func (b *Base) StartedAt() time.Time                { return b.start }
func (b *Base) Elapsed(now time.Time) time.Duration { return now.Sub(b.start) }

func (b *Base) Finished(now time.Time) bool {
	return now.Sub(b.start) >= b.duration
}

func (b *Base) Palette() []canvas.Color { return b.palette }

// Color returns palette entry i, wrapping around.
func (b *Base) Color(i int) canvas.Color {
	if i < 0 {
		i = -i
	}
	return b.palette[i%len(b.palette)]
}

func (b *Base) Update()               {}
func (b *Base) Draw(_ canvas.Surface) {}

// Palette generates PaletteSize vivid colours with hues 18 degrees apart.
func Palette(rng *rand.Rand) []canvas.Color {
	p := make([]canvas.Color, PaletteSize)
	for i := range p {
		hue := float64((i * 18) % 360)
		s := 0.7 + rng.Float64()*0.3
		v := 0.8 + rng.Float64()*0.2
		p[i] = canvas.HSV(hue, s, v)
	}
	return p
}
