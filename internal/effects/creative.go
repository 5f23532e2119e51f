package effects

import (
	"math"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
)

type star struct {
	x, y, z, speed float64
}

type StarfieldWarpDrive struct {
	effect.Base
	env   effect.Env
	stars []star
}

func NewStarfieldWarpDrive(env effect.Env) effect.Effect {
	w := &StarfieldWarpDrive{Base: effect.NewBase("Starfield Warp Drive", 7*time.Second, env.Rand), env: env}
	for i := 0; i < 100; i++ {
		w.stars = append(w.stars, w.spawn(env.Uniform(1, 100)))
	}
	return w
}

func (w *StarfieldWarpDrive) spawn(z float64) star {
	return star{x: w.env.Uniform(0, w.env.Width), y: w.env.Uniform(0, w.env.Height), z: z, speed: w.env.Uniform(1, 5)}
}

func (w *StarfieldWarpDrive) Update() {
	for i := range w.stars {
		w.stars[i].z -= w.stars[i].speed
		if w.stars[i].z <= 0 {
			w.stars[i] = w.spawn(100)
		}
	}
}

func (w *StarfieldWarpDrive) Draw(s canvas.Surface) {
	c := w.env.Center()
	for _, st := range w.stars {
		p := canvas.Pt(c.X+(st.x-c.X)/st.z*4, c.Y+(st.y-c.Y)/st.z*4)
		if p.X < 0 || p.X >= w.env.Width || p.Y < 0 || p.Y >= w.env.Height {
			continue
		}
		size := math.Max(1, 10/st.z)
		b := int(math.Min(255, 60+2550/st.z))
		s.Circle(p, size, 0, canvas.Gray8(b))
	}
}

type LissajousOrbitDance struct {
	effect.Base
	env effect.Env
	t   float64
}

func NewLissajousOrbitDance(env effect.Env) effect.Effect {
	return &LissajousOrbitDance{Base: effect.NewBase("Lissajous Orbit Dance", 6*time.Second, env.Rand), env: env}
}

func (l *LissajousOrbitDance) Update() { l.t += 0.05 }

func (l *LissajousOrbitDance) Draw(s canvas.Surface) {
	c := l.env.Center()
	for i := 0; i < 3; i++ {
		fi := float64(i)
		a, b := 100+fi*50, 100+fi*30
		fx, fy := 2+fi, 3+fi
		phase := l.t + fi*math.Pi/3
		pts := make([]canvas.Point, 0, 126)
		for t := 0.0; t < 6.28; t += 0.05 {
			pts = append(pts, canvas.Pt(c.X+a*math.Sin(fx*t+phase), c.Y+b*math.Sin(fy*t)))
		}
		s.Polyline(pts, false, 2, l.Color(i))
	}
}

type burst struct {
	age       int
	particles []effect.Particle
}

// ParticleFireworks launches a burst every second; a click launches one
// at the pointer.
type ParticleFireworks struct {
	effect.Base
	env    effect.Env
	frame  int
	bursts []burst
}

func NewParticleFireworks(env effect.Env) effect.Effect {
	return &ParticleFireworks{Base: effect.NewBase("Particle Fireworks", 5*time.Second, env.Rand), env: env}
}

func (f *ParticleFireworks) launch(at canvas.Point) {
	b := burst{}
	for i := 0; i < 30; i++ {
		vel := canvas.Polar(canvas.Point{}, f.env.Uniform(2, 8), f.env.Angle())
		p := effect.NewParticle(f.env.Rand, at, vel, f.env.Pick(f.Palette()), 2)
		p.Gravity = 0.1
		p.Decay = 0
		b.particles = append(b.particles, p)
	}
	f.bursts = append(f.bursts, b)
}

func (f *ParticleFireworks) Update() {
	f.frame++
	if f.frame%60 == 0 {
		f.launch(f.env.Point(100))
	}
	live := f.bursts[:0]
	for _, b := range f.bursts {
		b.age++
		for i := range b.particles {
			b.particles[i].Update()
			b.particles[i].Size = 2
		}
		if b.age <= 120 {
			live = append(live, b)
		}
	}
	f.bursts = live
}

func (f *ParticleFireworks) Draw(s canvas.Surface) {
	for _, b := range f.bursts {
		for _, p := range b.particles {
			s.Circle(p.Pos, 2, 0, p.Color)
		}
	}
}

func (f *ParticleFireworks) PointerMoved(canvas.Point) {}
func (f *ParticleFireworks) Clicked(p canvas.Point)    { f.launch(p) }

type dot struct {
	pos, vel canvas.Point
	charge   float64
	color    canvas.Color
}

// MagneticDots are charged dots that attract and repel each other. The
// pointer attracts every dot within range; a click flips all charges.
type MagneticDots struct {
	effect.Base
	env     effect.Env
	dots    []dot
	pointer *canvas.Point
}

const (
	magneticRange  = 100.0
	pointerRange   = 250.0
	maxDotVelocity = 6.0
)

func NewMagneticDots(env effect.Env) effect.Effect {
	m := &MagneticDots{Base: effect.NewBase("Magnetic Dots", 7*time.Second, env.Rand), env: env}
	for i := 0; i < 20; i++ {
		m.dots = append(m.dots, dot{
			pos:    env.Point(0),
			vel:    canvas.Pt(env.Uniform(-2, 2), env.Uniform(-2, 2)),
			charge: env.Sign(),
			color:  env.Pick(m.Palette()),
		})
	}
	return m
}

func (m *MagneticDots) Update() {
	for i := range m.dots {
		d := &m.dots[i]
		d.pos = d.pos.Add(d.vel)
		bounce(&d.pos.X, &d.vel.X, m.env.Width)
		bounce(&d.pos.Y, &d.vel.Y, m.env.Height)

		for j := range m.dots {
			if i == j {
				continue
			}
			delta := m.dots[j].pos.Sub(d.pos)
			dist := math.Hypot(delta.X, delta.Y)
			if dist > 0 && dist < magneticRange {
				force := d.charge * m.dots[j].charge / (dist * dist)
				d.vel = d.vel.Add(delta.Scale(force * 0.1 / dist))
			}
		}
		if m.pointer != nil {
			delta := m.pointer.Sub(d.pos)
			if dist := math.Hypot(delta.X, delta.Y); dist > 1 && dist < pointerRange {
				d.vel = d.vel.Add(delta.Scale(0.05 / dist))
			}
		}
		if sp := math.Hypot(d.vel.X, d.vel.Y); sp > maxDotVelocity {
			d.vel = d.vel.Scale(maxDotVelocity / sp)
		}
	}
}

func (m *MagneticDots) Draw(s canvas.Surface) {
	if m.pointer != nil {
		s.Circle(*m.pointer, pointerRange, 1, canvas.DarkGray)
	}
	for _, d := range m.dots {
		s.Circle(d.pos, 5, 0, d.color)
	}
}

func (m *MagneticDots) PointerMoved(p canvas.Point) { m.pointer = &p }

func (m *MagneticDots) Clicked(canvas.Point) {
	for i := range m.dots {
		m.dots[i].charge = -m.dots[i].charge
	}
}

type BezierBlossom struct {
	effect.Base
	env     effect.Env
	t       float64
	control []canvas.Point
}

func NewBezierBlossom(env effect.Env) effect.Effect {
	b := &BezierBlossom{Base: effect.NewBase("Bezier Blossom", 6*time.Second, env.Rand), env: env}
	b.reseed()
	return b
}

func (b *BezierBlossom) reseed() {
	c := b.env.Center()
	b.control = b.control[:0]
	for i := 0; i < 8; i++ {
		b.control = append(b.control, canvas.Polar(c, float64(b.env.IntRange(100, 200)), float64(i)*math.Pi/4))
	}
}

func (b *BezierBlossom) Update() {
	b.t += 0.02
	if b.t >= 1 {
		b.t = 0
		b.reseed()
	}
}

func (b *BezierBlossom) Draw(s canvas.Surface) {
	curve := make([]canvas.Point, 0, 50)
	for t := 0.0; t < 1; t += 0.02 {
		curve = append(curve, bezier(b.control, t))
	}
	s.Polyline(curve, false, 3, b.Color(0))
	for _, p := range b.control {
		s.Circle(p, 5, 0, canvas.White)
	}
}

// bezier evaluates the curve with de Casteljau's algorithm.
func bezier(pts []canvas.Point, t float64) canvas.Point {
	work := append([]canvas.Point(nil), pts...)
	for n := len(work); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			work[i] = work[i].Add(work[i+1].Sub(work[i]).Scale(t))
		}
	}
	return work[0]
}

// RotatingTesseract draws a 4D hypercube rotating in two planes and
// projected down to 2D.
type RotatingTesseract struct {
	effect.Base
	env      effect.Env
	t        float64
	cam      *camera
	vertices []vec4
	edges    [][2]int
}

func NewRotatingTesseract(env effect.Env) effect.Effect {
	r := &RotatingTesseract{Base: effect.NewBase("Rotating Tesseract (4D Cube)", 7*time.Second, env.Rand), env: env, cam: newCamera()}
	for i := 0; i < 16; i++ {
		r.vertices = append(r.vertices, vec4{sign(i, 0), sign(i, 1), sign(i, 2), sign(i, 3)})
	}
	for i := 0; i < 16; i++ {
		for bit := 0; bit < 4; bit++ {
			if j := i ^ (1 << bit); j > i {
				r.edges = append(r.edges, [2]int{i, j})
			}
		}
	}
	r.cam.RotX = 0.4
	return r
}

func sign(i, bit int) float64 {
	if i&(1<<bit) != 0 {
		return 1
	}
	return -1
}

func (r *RotatingTesseract) Update() {
	r.t += 0.02
	r.cam.RotY += 0.005
}

func (r *RotatingTesseract) Draw(s canvas.Surface) {
	c := r.env.Center()
	unit := math.Min(r.env.Width, r.env.Height) / 2.5
	proj := make([]canvas.Point, len(r.vertices))
	for i, v := range r.vertices {
		p, _, _ := r.cam.project(to3(rotate4(v, r.t, r.t*0.7), 3), c, unit)
		proj[i] = p
	}
	for k, e := range r.edges {
		s.Line(proj[e[0]], proj[e[1]], 2, r.Color(k))
	}
	for i, p := range proj {
		s.Circle(p, 6, 0, r.Color(i*3))
	}
}
