package effects

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/kinetics"
	"github.com/san-kum/saverium/internal/registry"
)

func allFactories() []effect.Factory {
	var fs []effect.Factory
	for _, l := range [][]effect.Factory{Classic, Creative, Math, Kinetic, Spectrum} {
		fs = append(fs, l...)
	}
	return fs
}

func TestEveryEffectRuns(t *testing.T) {
	env := effect.NewEnv(0, 0, 7)
	r := canvas.NewRaster(120, 80, env.Width, env.Height)
	for _, f := range allFactories() {
		fx := f(env)
		t.Run(fx.Name(), func(t *testing.T) {
			if fx.Duration() <= 0 {
				t.Errorf("duration = %v", fx.Duration())
			}
			if len(fx.Palette()) != effect.PaletteSize {
				t.Errorf("palette size = %d", len(fx.Palette()))
			}
			for i := 0; i < 120; i++ {
				fx.Update()
				if i%20 == 0 {
					r.Fill(canvas.Black)
					fx.Draw(r)
				}
			}
		})
	}
}

func TestNamesAreUnique(t *testing.T) {
	env := effect.NewEnv(0, 0, 1)
	seen := map[string]bool{}
	for _, f := range allFactories() {
		name := f(env).Name()
		if seen[name] {
			t.Errorf("duplicate effect name %q", name)
		}
		seen[name] = true
	}
}

func TestCapabilities(t *testing.T) {
	env := effect.NewEnv(0, 0, 3)

	interactive := map[string]bool{"Particle Fireworks": true, "Magnetic Dots": true}
	for _, f := range allFactories() {
		fx := f(env)
		_, ok := fx.(effect.Interactive)
		if ok != interactive[fx.Name()] {
			t.Errorf("%s: interactive = %v", fx.Name(), ok)
		}
	}

	for _, f := range Math {
		fx := f(env)
		eq, ok := fx.(effect.Equation)
		if !ok {
			t.Errorf("%s does not expose an equation", fx.Name())
			continue
		}
		if got := eq.Equation(); !strings.HasPrefix(got, "f(x) = ") {
			t.Errorf("%s equation = %q", fx.Name(), got)
		}
	}
}

func TestFireworksClickLaunches(t *testing.T) {
	env := effect.NewEnv(0, 0, 5)
	f := NewParticleFireworks(env).(*ParticleFireworks)
	before := len(f.bursts)
	f.Clicked(canvas.Pt(300, 300))
	if len(f.bursts) != before+1 {
		t.Fatalf("bursts = %d, want %d", len(f.bursts), before+1)
	}
}

func TestMathPlotDrawsGrid(t *testing.T) {
	env := effect.NewEnv(0, 0, 9)
	r := canvas.NewRaster(240, 160, env.Width, env.Height)
	r.Fill(canvas.Black)
	fx := NewAnimatedLinearFunction(env)
	fx.Update()
	fx.Draw(r)
	// x = 0 is a grid line
	if got := r.Image().RGBAAt(0, 80); got.R == 0 && got.G == 0 && got.B == 0 {
		t.Error("grid line missing at x=0")
	}
}

func TestDriftStaysNearLimits(t *testing.T) {
	env := effect.NewEnv(0, 0, 11)
	d := newDrift(env, -1, 1, -0.5, 0.5, -2, 2)
	for i := 0; i < 10000; i++ {
		d.step(env, i%50 == 0)
		if d.Value < -3 || d.Value > 3 {
			t.Fatalf("step %d: value %v escaped", i, d.Value)
		}
	}
}

func TestRunsSplitsOffscreen(t *testing.T) {
	pts := []canvas.Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: -5}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}}
	got := runs(pts, func(p canvas.Point) bool { return p.Y >= 0 })
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 3 {
		t.Fatalf("runs = %v", got)
	}
}

func TestLorenzTrailIsBounded(t *testing.T) {
	l := NewLorenzButterfly(effect.NewEnv(0, 0, 2)).(*LorenzButterfly)
	for i := 0; i < 700; i++ {
		l.Update()
	}
	if len(l.trail) != 500 {
		t.Errorf("trail = %d, want 500", len(l.trail))
	}
}

func TestKineticStartsArePerturbed(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		env := effect.NewEnv(0, 0, seed)
		l := NewLorenzButterfly(env).(*LorenzButterfly)
		def := kinetics.NewLorenz().DefaultState()
		if d := math.Abs(l.sim.State[0] - def[0]); d > 0.5 {
			t.Errorf("seed %d: lorenz x moved by %v", seed, d)
		}
		for i := 1; i < len(def); i++ {
			if l.sim.State[i] != def[i] {
				t.Errorf("seed %d: lorenz component %d changed", seed, i)
			}
		}

		c := NewCoupledPendulums(env).(*CoupledPendulums)
		if th := c.sim.State[0]; th < 0.3 || th > 0.7 {
			t.Errorf("seed %d: coupled theta1 = %v", seed, th)
		}
	}
}

func TestZigzagEndpoints(t *testing.T) {
	a, b := canvas.Pt(0, 0), canvas.Pt(100, 0)
	pts := zigzag(a, b, 5, 4)
	if pts[0] != a || pts[len(pts)-1] != b {
		t.Fatalf("endpoints = %v, %v", pts[0], pts[len(pts)-1])
	}
	if len(pts) != 11 {
		t.Errorf("points = %d, want 11", len(pts))
	}
	if len(zigzag(a, a, 5, 4)) != 2 {
		t.Error("degenerate spring should be a single segment")
	}
}

func TestCatalogSources(t *testing.T) {
	env := effect.NewEnv(0, 0, 4)
	cat := Catalog()
	sizes := map[string]int{"classic": 10, "creative": 6, "all": 16, "math": 6, "kinetic": 3, "spectrum": 1}
	for name, want := range sizes {
		src, ok := cat[name]
		if !ok {
			t.Errorf("missing source %q", name)
			continue
		}
		if got := len(src(env)); got != want {
			t.Errorf("%s: %d entries, want %d", name, got, want)
		}
	}

	reg, rep := registry.Build(cat, config.DefaultConfig().Registry.Sources, registry.Options{Env: env, Rand: env.Rand})
	if len(rep.Missing) != 0 {
		t.Errorf("default sources missing from catalog: %v", rep.Missing)
	}
	if rep.Dropped != len(Classic) {
		t.Errorf("dropped = %d, want %d", rep.Dropped, len(Classic))
	}
	if reg.Len() != 10+6+6+3+1 {
		t.Errorf("registry size = %d", reg.Len())
	}
	if reg.At(0).Name != "Cosmic Dance" {
		t.Errorf("first entry = %q", reg.At(0).Name)
	}
}
