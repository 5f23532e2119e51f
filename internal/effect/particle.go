package effect

import (
	"math/rand"

	"github.com/san-kum/saverium/internal/canvas"
)

// Particle is a short-lived dot that drifts, fades and shrinks.
type Particle struct {
	Pos, Vel canvas.Point
	Color    canvas.Color
	Size     float64
	Life     float64
	Decay    float64
	Gravity  float64
}

func NewParticle(rng *rand.Rand, pos, vel canvas.Point, c canvas.Color, size float64) Particle {
	return Particle{Pos: pos, Vel: vel, Color: c, Size: size, Life: 255, Decay: 1 + rng.Float64()*2}
}

func (p *Particle) Update() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += p.Gravity
	p.Life -= p.Decay
	p.Size -= 0.1
	if p.Size < 0 {
		p.Size = 0
	}
}

func (p *Particle) Alive() bool { return p.Life > 0 }

func (p *Particle) Draw(s canvas.Surface) {
	if p.Life <= 0 {
		return
	}
	s.Circle(p.Pos, p.Size, 0, p.Color.WithAlpha(int(p.Life)))
}

// Sweep updates every particle and drops the dead ones in place.
func Sweep(ps []Particle) []Particle {
	live := ps[:0]
	for i := range ps {
		ps[i].Update()
		if ps[i].Alive() {
			live = append(live, ps[i])
		}
	}
	return live
}
