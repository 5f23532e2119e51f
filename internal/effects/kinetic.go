package effects

import (
	"log"
	"math"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/kinetics"
)

// trail is a fixed-capacity ring of recent points.
type trail struct {
	pts  []canvas.Point
	size int
}

func (t *trail) push(p canvas.Point) {
	t.pts = append(t.pts, p)
	if len(t.pts) > t.size {
		t.pts = t.pts[len(t.pts)-t.size:]
	}
}

func (t *trail) reset() { t.pts = t.pts[:0] }

type LorenzButterfly struct {
	effect.Base
	env   effect.Env
	sim   *kinetics.Sim
	cam   *camera
	trail []vec3
}

func NewLorenzButterfly(env effect.Env) effect.Effect {
	l := &LorenzButterfly{
		Base: effect.NewBase("Lorenz Butterfly", 10*time.Second, env.Rand),
		env:  env,
		sim:  kinetics.NewSim(kinetics.NewLorenz(), 0.005, 2),
		cam:  newCamera(),
	}
	l.cam.RotX = -math.Pi / 2
	// nudge the start so every run traces a different path
	x := l.sim.State.Clone()
	x[0] += env.Uniform(-0.5, 0.5)
	if err := l.sim.SetState(x); err != nil {
		log.Printf("lorenz: %v", err)
	}
	return l
}

func (l *LorenzButterfly) Update() {
	if err := l.sim.Advance(); err != nil {
		log.Printf("lorenz: %v", err)
		l.trail = l.trail[:0]
		return
	}
	s := l.sim.State
	// centre the attractor around the origin in model units
	l.trail = append(l.trail, vec3{s[0] / 20, s[1] / 20, (s[2] - 25) / 20})
	if len(l.trail) > 500 {
		l.trail = l.trail[len(l.trail)-500:]
	}
	l.cam.RotZ += 0.004
}

func (l *LorenzButterfly) Draw(s canvas.Surface) {
	c := l.env.Center()
	unit := math.Min(l.env.Width, l.env.Height) * 0.4
	var prev canvas.Point
	have := false
	for i, p := range l.trail {
		q, _, ok := l.cam.project(p, c, unit)
		if !ok {
			have = false
			continue
		}
		if have {
			col := l.Color(i / 25).WithAlpha(60 + 195*i/len(l.trail))
			s.Line(prev, q, 2, col)
		}
		prev, have = q, true
	}
	if have {
		s.Circle(prev, 5, 0, canvas.White)
	}
}

type DoublePendulumChaos struct {
	effect.Base
	env   effect.Env
	sys   *kinetics.DoublePendulum
	sim   *kinetics.Sim
	trail trail
}

func NewDoublePendulumChaos(env effect.Env) effect.Effect {
	sys := kinetics.NewDoublePendulum()
	sys.Start = kinetics.State{math.Pi/2 + env.Uniform(-0.3, 0.3), math.Pi + env.Uniform(-0.3, 0.3), 0, 0}
	return &DoublePendulumChaos{
		Base:  effect.NewBase("Double Pendulum Chaos", 9*time.Second, env.Rand),
		env:   env,
		sys:   sys,
		sim:   kinetics.NewSim(sys, 0.002, 8),
		trail: trail{size: 200},
	}
}

func (d *DoublePendulumChaos) bobs() (pivot, b1, b2 canvas.Point) {
	pivot = canvas.Pt(d.env.Width/2, d.env.Height/3)
	length := d.env.Height * 0.25
	s := d.sim.State
	b1 = canvas.Pt(pivot.X+length*math.Sin(s[0]), pivot.Y+length*math.Cos(s[0]))
	b2 = canvas.Pt(b1.X+length*math.Sin(s[1]), b1.Y+length*math.Cos(s[1]))
	return
}

func (d *DoublePendulumChaos) Update() {
	if err := d.sim.Advance(); err != nil {
		log.Printf("double pendulum: %v", err)
		d.trail.reset()
		return
	}
	_, _, b2 := d.bobs()
	d.trail.push(b2)
}

func (d *DoublePendulumChaos) Draw(s canvas.Surface) {
	n := len(d.trail.pts)
	for i := 1; i < n; i++ {
		col := d.Color(i / 10).WithAlpha(255 * i / n)
		s.Line(d.trail.pts[i-1], d.trail.pts[i], 2, col)
	}
	pivot, b1, b2 := d.bobs()
	s.Line(pivot, b1, 3, canvas.White)
	s.Line(b1, b2, 3, canvas.White)
	s.Circle(pivot, 4, 0, canvas.Gray)
	s.Circle(b1, 12, 0, d.Color(0))
	s.Circle(b2, 12, 0, d.Color(5))
}

type CoupledPendulums struct {
	effect.Base
	env effect.Env
	sim *kinetics.Sim
}

func NewCoupledPendulums(env effect.Env) effect.Effect {
	c := &CoupledPendulums{
		Base: effect.NewBase("Coupled Pendulums", 8*time.Second, env.Rand),
		env:  env,
		sim:  kinetics.NewSim(kinetics.NewCoupledPendulums(), 0.004, 4),
	}
	if err := c.sim.SetState(kinetics.State{env.Uniform(0.3, 0.7), 0, 0, 0}); err != nil {
		log.Printf("coupled pendulums: %v", err)
	}
	return c
}

func (c *CoupledPendulums) Update() {
	if err := c.sim.Advance(); err != nil {
		log.Printf("coupled pendulums: %v", err)
	}
}

func (c *CoupledPendulums) Draw(s canvas.Surface) {
	w, h := c.env.Width, c.env.Height
	length := h * 0.45
	gap := w * 0.2
	st := c.sim.State
	pivots := [2]canvas.Point{canvas.Pt(w/2-gap/2, h*0.15), canvas.Pt(w/2+gap/2, h*0.15)}
	thetas := [2]float64{st[0], st[2]}
	var bobs [2]canvas.Point
	for i := range bobs {
		bobs[i] = canvas.Pt(pivots[i].X+length*math.Sin(thetas[i]), pivots[i].Y+length*math.Cos(thetas[i]))
	}

	s.Line(canvas.Pt(pivots[0].X-gap, pivots[0].Y), canvas.Pt(pivots[1].X+gap, pivots[1].Y), 4, canvas.Gray)

	// spring joins the rods at two thirds of their length
	a := canvas.Pt(pivots[0].X+length*0.66*math.Sin(thetas[0]), pivots[0].Y+length*0.66*math.Cos(thetas[0]))
	b := canvas.Pt(pivots[1].X+length*0.66*math.Sin(thetas[1]), pivots[1].Y+length*0.66*math.Cos(thetas[1]))
	s.Polyline(zigzag(a, b, 12, 10), false, 2, c.Color(10))

	for i := range bobs {
		s.Line(pivots[i], bobs[i], 3, canvas.White)
		s.Circle(bobs[i], 18, 0, c.Color(i*7))
	}
}

// zigzag returns a spring drawn between a and b with n coils.
func zigzag(a, b canvas.Point, n int, amp float64) []canvas.Point {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return []canvas.Point{a, b}
	}
	nx, ny := -d.Y/length, d.X/length
	pts := []canvas.Point{a}
	for i := 1; i < n*2; i++ {
		t := float64(i) / float64(n*2)
		side := amp
		if i%2 == 0 {
			side = -amp
		}
		pts = append(pts, canvas.Pt(a.X+d.X*t+nx*side, a.Y+d.Y*t+ny*side))
	}
	return append(pts, b)
}
