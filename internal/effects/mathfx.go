package effects

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
)

// plot is shared by the function plotters: a drifting set of
// coefficients, a background grid and one curve.
type plot struct {
	effect.Base
	env    effect.Env
	frame  int
	period int
	params []drift
	f      func(x float64) float64
}

func (p *plot) Update() {
	p.frame++
	reroll := p.frame >= p.period
	if reroll {
		p.frame = 0
	}
	for i := range p.params {
		p.params[i].step(p.env, reroll)
	}
}

func (p *plot) Draw(s canvas.Surface) {
	w, h := p.env.Width, p.env.Height
	for x := 0.0; x < w; x += 50 {
		s.Line(canvas.Pt(x, 0), canvas.Pt(x, h), 1, canvas.DarkGray)
	}
	for y := 0.0; y < h; y += 50 {
		s.Line(canvas.Pt(0, y), canvas.Pt(w, y), 1, canvas.DarkGray)
	}

	pts := make([]canvas.Point, 0, int(w/2)+1)
	for x := 0.0; x < w; x += 2 {
		y := h/2 - p.f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			y = -1
		}
		pts = append(pts, canvas.Pt(x, y))
	}
	visible := func(pt canvas.Point) bool { return pt.Y >= 0 && pt.Y < h }
	for _, r := range runs(pts, visible) {
		s.Polyline(r, false, 3, p.Color(0))
	}
}

func (p *plot) v(i int) float64 { return p.params[i].Value }

type AnimatedLinearFunction struct{ plot }

func NewAnimatedLinearFunction(env effect.Env) effect.Effect {
	l := &AnimatedLinearFunction{plot{Base: effect.NewBase("Animated Linear Function", 8*time.Second, env.Rand), env: env, period: 120}}
	l.params = []drift{
		newDrift(env, -2, 2, -0.01, 0.01, -3, 3),
		newDrift(env, -100, 100, -1, 1, -150, 150),
	}
	l.f = func(x float64) float64 { return l.v(0)*x + l.v(1) }
	return l
}

func (l *AnimatedLinearFunction) Equation() string {
	return fmt.Sprintf("f(x) = %.2fx + %.1f", l.v(0), l.v(1))
}

type OscillatingQuadratic struct{ plot }

func NewOscillatingQuadratic(env effect.Env) effect.Effect {
	q := &OscillatingQuadratic{plot{Base: effect.NewBase("Oscillating Quadratic", 8*time.Second, env.Rand), env: env, period: 90}}
	q.params = []drift{
		newDrift(env, -0.01, 0.01, -0.001, 0.001, -0.02, 0.02),
		newDrift(env, -2, 2, -0.01, 0.01, -3, 3),
		newDrift(env, -50, 50, -0.5, 0.5, -100, 100),
	}
	q.f = func(x float64) float64 { return q.v(0)*x*x + q.v(1)*x + q.v(2) }
	return q
}

func (q *OscillatingQuadratic) Equation() string {
	return fmt.Sprintf("f(x) = %.3fx² + %.2fx + %.1f", q.v(0), q.v(1), q.v(2))
}

type CubicFunctionMorph struct{ plot }

func NewCubicFunctionMorph(env effect.Env) effect.Effect {
	c := &CubicFunctionMorph{plot{Base: effect.NewBase("Cubic Function Morph", 8*time.Second, env.Rand), env: env, period: 80}}
	c.params = []drift{
		newDrift(env, -0.0001, 0.0001, -0.00001, 0.00001, -0.0002, 0.0002),
		newDrift(env, -0.01, 0.01, -0.001, 0.001, -0.02, 0.02),
		newDrift(env, -0.5, 0.5, -0.01, 0.01, -1, 1),
		newDrift(env, -25, 25, -0.2, 0.2, -50, 50),
	}
	c.f = func(x float64) float64 { return c.v(0)*x*x*x + c.v(1)*x*x + c.v(2)*x + c.v(3) }
	return c
}

func (c *CubicFunctionMorph) Equation() string {
	return fmt.Sprintf("f(x) = %.5fx³ + %.3fx² + %.2fx + %.1f", c.v(0), c.v(1), c.v(2), c.v(3))
}

type TrigonometricFunctionWave struct{ plot }

func NewTrigonometricFunctionWave(env effect.Env) effect.Effect {
	t := &TrigonometricFunctionWave{plot{Base: effect.NewBase("Trigonometric Function Wave", 8*time.Second, env.Rand), env: env, period: 100}}
	t.params = []drift{
		newDrift(env, 20, 80, -0.5, 0.5, 10, 100),
		newDrift(env, 0.01, 0.05, -0.001, 0.001, 0.005, 0.1),
		// phase is unbounded
		newDrift(env, 0, 2*math.Pi, -0.02, 0.02, math.Inf(-1), math.Inf(1)),
		newDrift(env, -50, 50, -0.5, 0.5, -100, 100),
	}
	t.f = func(x float64) float64 { return t.v(0)*math.Sin(t.v(1)*x+t.v(2)) + t.v(3) }
	return t
}

func (t *TrigonometricFunctionWave) Equation() string {
	return fmt.Sprintf("f(x) = %.1fsin(%.3fx + %.2f) + %.1f", t.v(0), t.v(1), t.v(2), t.v(3))
}

type ExponentialGrowthDecay struct{ plot }

func NewExponentialGrowthDecay(env effect.Env) effect.Effect {
	e := &ExponentialGrowthDecay{plot{Base: effect.NewBase("Exponential Growth/Decay", 8*time.Second, env.Rand), env: env, period: 110}}
	e.params = []drift{
		newDrift(env, 1.1, 2.0, -0.01, 0.01, 1.05, 3.0),
		newDrift(env, 0.5, 2.0, -0.02, 0.02, 0.1, 5.0),
		newDrift(env, -50, 50, -0.5, 0.5, -100, 100),
	}
	e.f = func(x float64) float64 { return e.v(1)*math.Pow(e.v(0), x/100) + e.v(2) }
	return e
}

func (e *ExponentialGrowthDecay) Equation() string {
	return fmt.Sprintf("f(x) = %.2f * %.2f^x + %.1f", e.v(1), e.v(0), e.v(2))
}

type LogarithmicFunction struct{ plot }

func NewLogarithmicFunction(env effect.Env) effect.Effect {
	l := &LogarithmicFunction{plot{Base: effect.NewBase("Logarithmic Function", 8*time.Second, env.Rand), env: env, period: 120}}
	l.params = []drift{
		newDrift(env, 0.5, 2.0, -0.02, 0.02, 0.1, 5.0),
		newDrift(env, 1.5, 3.0, -0.01, 0.01, 1.1, 5.0),
		newDrift(env, -50, 50, -1, 1, -100, 100),
	}
	l.f = func(x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		return l.v(0)*math.Log(x/100)/math.Log(l.v(1)) + l.v(2)
	}
	return l
}

func (l *LogarithmicFunction) Equation() string {
	return fmt.Sprintf("f(x) = %.2f * log_%.2f(x) + %.1f", l.v(0), l.v(1), l.v(2))
}
