package effects

import (
	"math"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
)

type orbit struct {
	angle, radius, speed, size float64
	color                      canvas.Color
}

type CosmicDance struct {
	effect.Base
	env    effect.Env
	phase  float64
	orbits []orbit
}

func NewCosmicDance(env effect.Env) effect.Effect {
	c := &CosmicDance{Base: effect.NewBase("Cosmic Dance", 8*time.Second, env.Rand), env: env}
	for i := 0; i < 15; i++ {
		c.orbits = append(c.orbits, orbit{
			angle:  env.Angle(),
			radius: env.Uniform(50, 300),
			speed:  env.Uniform(0.02, 0.08),
			color:  env.Pick(c.Palette()),
			size:   env.Uniform(5, 20),
		})
	}
	return c
}

func (c *CosmicDance) Update() {
	c.phase += 0.02
	for i := range c.orbits {
		c.orbits[i].angle += c.orbits[i].speed
	}
}

func (c *CosmicDance) Draw(s canvas.Surface) {
	// background stars are reseeded every frame
	for i := 0; i < 100; i++ {
		b := int(50 + 100*math.Sin(c.phase+float64(i)*0.1))
		col := canvas.Color{R: clamp8(b), G: clamp8(b), B: clamp8(b + 50), A: 255}
		s.Circle(canvas.Pt(c.env.Uniform(0, c.env.Width), c.env.Uniform(0, c.env.Height)), 1, 0, col)
	}
	center := c.env.Center()
	for _, o := range c.orbits {
		s.Circle(canvas.Polar(center, o.radius, o.angle), o.size, 0, o.color)
	}
}

type wave struct {
	amplitude, frequency, phase, thickness float64
	color                                  canvas.Color
}

type RainbowWaves struct {
	effect.Base
	env   effect.Env
	phase float64
	waves []wave
}

func NewRainbowWaves(env effect.Env) effect.Effect {
	r := &RainbowWaves{Base: effect.NewBase("Rainbow Waves", 6*time.Second, env.Rand), env: env}
	for i := 0; i < 8; i++ {
		r.waves = append(r.waves, wave{
			amplitude: env.Uniform(50, 200),
			frequency: env.Uniform(0.01, 0.03),
			phase:     env.Angle(),
			color:     env.Pick(r.Palette()),
			thickness: float64(env.IntRange(3, 8)),
		})
	}
	return r
}

func (r *RainbowWaves) Update() { r.phase += 0.03 }

func (r *RainbowWaves) Draw(s canvas.Surface) {
	mid := r.env.Height / 2
	for _, w := range r.waves {
		pts := make([]canvas.Point, 0, int(r.env.Width/5)+1)
		for x := 0.0; x < r.env.Width; x += 5 {
			pts = append(pts, canvas.Pt(x, mid+w.amplitude*math.Sin(w.frequency*x+w.phase+r.phase)))
		}
		s.Polyline(pts, false, w.thickness, w.color)
	}
}

type ParticleExplosion struct {
	effect.Base
	env       effect.Env
	particles []effect.Particle
}

func NewParticleExplosion(env effect.Env) effect.Effect {
	p := &ParticleExplosion{Base: effect.NewBase("Particle Explosion", 4*time.Second, env.Rand), env: env}
	p.explode()
	return p
}

func (p *ParticleExplosion) explode() {
	at := p.env.Point(100)
	for i := 0; i < 50 && !capped(p.env, len(p.particles)); i++ {
		a, speed := p.env.Angle(), p.env.Uniform(2, 8)
		vel := canvas.Polar(canvas.Point{}, speed, a)
		p.particles = append(p.particles, effect.NewParticle(p.env.Rand, at, vel, p.env.Pick(p.Palette()), p.env.Uniform(3, 8)))
	}
}

func (p *ParticleExplosion) Update() {
	p.particles = effect.Sweep(p.particles)
	if len(p.particles) < 10 {
		p.explode()
	}
}

func (p *ParticleExplosion) Draw(s canvas.Surface) {
	for i := range p.particles {
		p.particles[i].Draw(s)
	}
}

type shape struct {
	sides                        int // 0 for a circle
	pos                          canvas.Point
	size, rotation, rotationRate float64
	color                        canvas.Color
}

type GeometricHypnosis struct {
	effect.Base
	env    effect.Env
	phase  float64
	shapes []shape
}

func NewGeometricHypnosis(env effect.Env) effect.Effect {
	g := &GeometricHypnosis{Base: effect.NewBase("Geometric Hypnosis", 7*time.Second, env.Rand), env: env}
	kinds := []int{0, 3, 4, 5}
	for i := 0; i < 12; i++ {
		g.shapes = append(g.shapes, shape{
			sides:        kinds[env.Rand.Intn(len(kinds))],
			pos:          env.Point(100),
			size:         env.Uniform(20, 80),
			color:        env.Pick(g.Palette()),
			rotation:     env.Angle(),
			rotationRate: env.Uniform(-0.05, 0.05),
		})
	}
	return g
}

func (g *GeometricHypnosis) Update() {
	g.phase += 0.02
	for i := range g.shapes {
		sh := &g.shapes[i]
		sh.rotation += sh.rotationRate
		sh.size = 20 + 60*math.Sin(g.phase+sh.rotation)
	}
}

func (g *GeometricHypnosis) Draw(s canvas.Surface) {
	for _, sh := range g.shapes {
		if sh.size <= 0 {
			continue
		}
		if sh.sides == 0 {
			s.Circle(sh.pos, sh.size, 0, sh.color)
			continue
		}
		s.Polygon(regular(sh.pos, sh.size, sh.sides, sh.rotation), 0, sh.color)
	}
}

type node struct {
	pos         canvas.Point
	size, pulse float64
	color       canvas.Color
}

type NeuralNetwork struct {
	effect.Base
	env   effect.Env
	phase float64
	nodes []node
	links [][2]int
}

func NewNeuralNetwork(env effect.Env) effect.Effect {
	n := &NeuralNetwork{Base: effect.NewBase("Neural Network", 9*time.Second, env.Rand), env: env}
	for i := 0; i < 20; i++ {
		n.nodes = append(n.nodes, node{
			pos:   env.Point(50),
			color: env.Pick(n.Palette()),
			size:  env.Uniform(5, 15),
			pulse: env.Angle(),
		})
	}
	for i := range n.nodes {
		for j := i + 1; j < len(n.nodes); j++ {
			if env.Rand.Float64() < 0.3 {
				n.links = append(n.links, [2]int{i, j})
			}
		}
	}
	return n
}

func (n *NeuralNetwork) Update() {
	n.phase += 0.03
	for i := range n.nodes {
		n.nodes[i].pulse += 0.1
		n.nodes[i].size = 5 + 10*math.Sin(n.nodes[i].pulse)
	}
}

func (n *NeuralNetwork) Draw(s canvas.Surface) {
	for _, l := range n.links {
		a, b := n.nodes[l[0]], n.nodes[l[1]]
		alpha := int(100 + 100*math.Sin(n.phase+float64(l[0]+l[1])))
		s.Line(a.pos, b.pos, 2, a.color.WithAlpha(alpha))
	}
	for _, nd := range n.nodes {
		if nd.size > 0 {
			s.Circle(nd.pos, nd.size, 0, nd.color)
		}
	}
}

type bubble struct {
	pos                      canvas.Point
	radius, speed, direction float64
	color                    canvas.Color
}

type ColorfulBubbles struct {
	effect.Base
	env     effect.Env
	phase   float64
	bubbles []bubble
}

func NewColorfulBubbles(env effect.Env) effect.Effect {
	c := &ColorfulBubbles{Base: effect.NewBase("Colorful Bubbles", 5*time.Second, env.Rand), env: env}
	for i := 0; i < 30; i++ {
		c.bubbles = append(c.bubbles, bubble{
			pos:       env.Point(50),
			radius:    env.Uniform(10, 50),
			color:     env.Pick(c.Palette()),
			speed:     env.Uniform(0.5, 2),
			direction: env.Angle(),
		})
	}
	return c
}

func (c *ColorfulBubbles) Update() {
	c.phase += 0.02
	for i := range c.bubbles {
		b := &c.bubbles[i]
		b.pos = canvas.Polar(b.pos, b.speed, b.direction)
		b.radius = 10 + 40*math.Sin(c.phase+b.pos.X*0.01)
		if b.pos.X < b.radius || b.pos.X > c.env.Width-b.radius {
			b.direction = math.Pi - b.direction
		}
		if b.pos.Y < b.radius || b.pos.Y > c.env.Height-b.radius {
			b.direction = -b.direction
		}
	}
}

func (c *ColorfulBubbles) Draw(s canvas.Surface) {
	for _, b := range c.bubbles {
		if b.radius > 0 {
			s.Circle(b.pos, b.radius, 0, b.color)
		}
	}
}

type drop struct {
	x, y, speed float64
	length      int
	color       canvas.Color
}

type MatrixRain struct {
	effect.Base
	env   effect.Env
	drops []drop
}

func NewMatrixRain(env effect.Env) effect.Effect {
	m := &MatrixRain{Base: effect.NewBase("Matrix Rain", 6*time.Second, env.Rand), env: env}
	for i := 0; i < int(env.Width)/20; i++ {
		m.drops = append(m.drops, drop{
			x:      float64(i * 20),
			y:      env.Uniform(-env.Height, 0),
			speed:  env.Uniform(2, 8),
			length: env.IntRange(5, 20),
			color:  env.Pick(m.Palette()),
		})
	}
	return m
}

func (m *MatrixRain) Update() {
	for i := range m.drops {
		d := &m.drops[i]
		d.y += d.speed
		if d.y > m.env.Height+float64(d.length)*10 {
			d.y = m.env.Uniform(-m.env.Height, 0)
		}
	}
}

func (m *MatrixRain) Draw(s canvas.Surface) {
	for _, d := range m.drops {
		for i := 0; i < d.length; i++ {
			y := d.y - float64(i)*10
			if y < 0 || y >= m.env.Height {
				continue
			}
			s.Circle(canvas.Pt(d.x, y), 2, 0, d.color.WithAlpha(255-i*255/d.length))
		}
	}
}

type SpiralGalaxy struct {
	effect.Base
	env          effect.Env
	phase        float64
	arms, perArm int
}

func NewSpiralGalaxy(env effect.Env) effect.Effect {
	return &SpiralGalaxy{Base: effect.NewBase("Spiral Galaxy", 8*time.Second, env.Rand), env: env, arms: 4, perArm: 50}
}

func (g *SpiralGalaxy) Update() { g.phase += 0.01 }

func (g *SpiralGalaxy) Draw(s canvas.Surface) {
	center := g.env.Center()
	for arm := 0; arm < g.arms; arm++ {
		base := 2 * math.Pi * float64(arm) / float64(g.arms)
		for i := 0; i < g.perArm; i++ {
			radius := 50 + float64(i)*8
			p := canvas.Polar(center, radius, base+float64(i)*0.1+g.phase)
			hue := math.Mod(radius*0.5+g.phase*50, 360)
			size := math.Max(1, 5-radius/100)
			s.Circle(p, size, 0, canvas.HSV(hue, 0.8, 1))
		}
	}
}

type island struct {
	pos                               canvas.Point
	size, offset, rotation, spinSpeed float64
	color                             canvas.Color
}

type FloatingIslands struct {
	effect.Base
	env     effect.Env
	phase   float64
	islands []island
}

func NewFloatingIslands(env effect.Env) effect.Effect {
	f := &FloatingIslands{Base: effect.NewBase("Floating Islands", 7*time.Second, env.Rand), env: env}
	for i := 0; i < 8; i++ {
		f.islands = append(f.islands, island{
			pos:       env.Point(100),
			size:      env.Uniform(30, 80),
			color:     env.Pick(f.Palette()),
			offset:    env.Angle(),
			rotation:  env.Angle(),
			spinSpeed: env.Uniform(-0.02, 0.02),
		})
	}
	return f
}

func (f *FloatingIslands) Update() {
	f.phase += 0.02
	for i := range f.islands {
		is := &f.islands[i]
		is.rotation += is.spinSpeed
		is.pos.Y += 2 * math.Sin(f.phase+is.offset)
	}
}

func (f *FloatingIslands) Draw(s canvas.Surface) {
	for _, is := range f.islands {
		s.Circle(is.pos, is.size, 0, is.color)
		for i := 0; i < 10; i++ {
			a := float64(i)*2*math.Pi/10 + is.rotation
			s.Circle(canvas.Polar(is.pos, is.size+20, a), 3, 0, f.env.Pick(f.Palette()))
		}
	}
}

type fieldPoint struct {
	pos    canvas.Point
	energy float64
	color  canvas.Color
}

type EnergyField struct {
	effect.Base
	env    effect.Env
	phase  float64
	points []fieldPoint
}

func NewEnergyField(env effect.Env) effect.Effect {
	e := &EnergyField{Base: effect.NewBase("Energy Field", 6*time.Second, env.Rand), env: env}
	for x := 0.0; x < env.Width; x += 40 {
		for y := 0.0; y < env.Height; y += 40 {
			e.points = append(e.points, fieldPoint{pos: canvas.Pt(x, y), energy: env.Angle(), color: env.Pick(e.Palette())})
		}
	}
	return e
}

func (e *EnergyField) Update() {
	e.phase += 0.05
	for i := range e.points {
		e.points[i].energy += 0.1
	}
}

func (e *EnergyField) Draw(s canvas.Surface) {
	for _, p := range e.points {
		size := math.Max(1, 5*math.Sin(p.energy+e.phase))
		s.Circle(p.pos, size, 0, p.color)
	}
}
