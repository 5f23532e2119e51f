package effects

import (
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/registry"
)

var (
	Classic = []effect.Factory{
		NewCosmicDance,
		NewRainbowWaves,
		NewParticleExplosion,
		NewGeometricHypnosis,
		NewNeuralNetwork,
		NewColorfulBubbles,
		NewMatrixRain,
		NewSpiralGalaxy,
		NewFloatingIslands,
		NewEnergyField,
	}

	Creative = []effect.Factory{
		NewStarfieldWarpDrive,
		NewLissajousOrbitDance,
		NewParticleFireworks,
		NewMagneticDots,
		NewBezierBlossom,
		NewRotatingTesseract,
	}

	Math = []effect.Factory{
		NewAnimatedLinearFunction,
		NewOscillatingQuadratic,
		NewCubicFunctionMorph,
		NewTrigonometricFunctionWave,
		NewExponentialGrowthDecay,
		NewLogarithmicFunction,
	}

	Kinetic = []effect.Factory{
		NewLorenzButterfly,
		NewDoublePendulumChaos,
		NewCoupledPendulums,
	}

	Spectrum = []effect.Factory{
		NewSpectrumBars,
	}
)

func describe(fs []effect.Factory) func(env effect.Env) []registry.Entry {
	return func(env effect.Env) []registry.Entry {
		out := make([]registry.Entry, len(fs))
		for i, f := range fs {
			out[i] = registry.Describe(env, f)
		}
		return out
	}
}

// Catalog returns every named source. "all" re-lists the classic set
// ahead of the creative one, so building it after "classic" drops the
// repeats.
func Catalog() registry.Catalog {
	all := append(append([]effect.Factory(nil), Classic...), Creative...)
	return registry.Catalog{
		"classic":  describe(Classic),
		"creative": describe(Creative),
		"all":      describe(all),
		"math":     describe(Math),
		"kinetic":  describe(Kinetic),
		"spectrum": describe(Spectrum),
	}
}
