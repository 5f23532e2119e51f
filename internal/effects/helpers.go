package effects

import (
	"math"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
)

// regular returns the vertices of a regular polygon.
func regular(center canvas.Point, radius float64, sides int, rotation float64) []canvas.Point {
	pts := make([]canvas.Point, sides)
	for i := range pts {
		pts[i] = canvas.Polar(center, radius, rotation+2*math.Pi*float64(i)/float64(sides))
	}
	return pts
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func capped(env effect.Env, n int) bool {
	return env.MaxParticles > 0 && n >= env.MaxParticles
}

// drift is a parameter that random-walks between bounds, picking a new
// rate every period frames and reflecting off the limits.
type drift struct {
	Value            float64
	rate             float64
	rateLo, rateHi   float64
	limitLo, limitHi float64
}

func newDrift(env effect.Env, initLo, initHi, rateLo, rateHi, limitLo, limitHi float64) drift {
	return drift{
		Value:   env.Uniform(initLo, initHi),
		rate:    env.Uniform(rateLo, rateHi),
		rateLo:  rateLo,
		rateHi:  rateHi,
		limitLo: limitLo,
		limitHi: limitHi,
	}
}

func (d *drift) step(env effect.Env, reroll bool) {
	if reroll {
		d.rate = env.Uniform(d.rateLo, d.rateHi)
	}
	d.Value += d.rate
	if d.Value < d.limitLo || d.Value > d.limitHi {
		d.rate = -d.rate
	}
}

// bounce reflects a velocity component when pos leaves [0, max].
func bounce(pos, vel *float64, max float64) {
	if *pos <= 0 || *pos >= max {
		*vel = -*vel
	}
}

// runs splits a sampled curve into visible stretches, so a function that
// leaves the screen is not joined across the gap.
func runs(pts []canvas.Point, visible func(canvas.Point) bool) [][]canvas.Point {
	var out [][]canvas.Point
	var cur []canvas.Point
	for _, p := range pts {
		if visible(p) {
			cur = append(cur, p)
			continue
		}
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
