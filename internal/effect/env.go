package effect

import (
	"math"
	"math/rand"

	"github.com/san-kum/saverium/internal/canvas"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// Env is what a factory needs to build an effect: the logical world size
// effects draw in and a random source.
type Env struct {
	Width, Height float64
	Rand          *rand.Rand
	// MaxParticles caps particle effects. Zero means no cap.
	MaxParticles int
}

func NewEnv(w, h float64, seed int64) Env {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return Env{Width: w, Height: h, Rand: rand.New(rand.NewSource(seed)), MaxParticles: 1000}
}

func (e Env) Center() canvas.Point { return canvas.Pt(e.Width/2, e.Height/2) }

// Uniform returns a float in [lo, hi).
func (e Env) Uniform(lo, hi float64) float64 { return lo + e.Rand.Float64()*(hi-lo) }

// IntRange returns an int in [lo, hi], inclusive like the ranges effects
// are tuned with.
func (e Env) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.Rand.Intn(hi-lo+1)
}

// Angle returns a random angle in radians.
func (e Env) Angle() float64 { return e.Uniform(0, 2*math.Pi) }

// Point returns a random point at least margin away from the edges.
func (e Env) Point(margin float64) canvas.Point {
	return canvas.Pt(e.Uniform(margin, e.Width-margin), e.Uniform(margin, e.Height-margin))
}

func (e Env) Pick(colors []canvas.Color) canvas.Color {
	return colors[e.Rand.Intn(len(colors))]
}

// Sign returns -1 or 1 with equal probability.
func (e Env) Sign() float64 {
	if e.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}
