package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Analyzer turns sample blocks into smoothed, auto-gained band levels in
// [0, 1]. Bands are spaced logarithmically over the lower half of the
// spectrum.
type Analyzer struct {
	Levels   []float64
	MaxLevel float64
	edges    []int
	samples  []float64
}

func NewAnalyzer(bands int) *Analyzer {
	if bands < 1 {
		bands = 1
	}
	a := &Analyzer{Levels: make([]float64, bands), MaxLevel: 0.1, samples: make([]float64, BufferSize)}
	half := BufferSize / 2
	a.edges = make([]int, bands+1)
	for i := range a.edges {
		e := int(math.Pow(float64(half), float64(i)/float64(bands)))
		if i > 0 && e <= a.edges[i-1] {
			e = a.edges[i-1] + 1
		}
		a.edges[i] = e
	}
	a.edges[bands] = half
	return a
}

// Process analyses one block. Short blocks are zero padded.
func (a *Analyzer) Process(in []float64) {
	n := copy(a.samples, in)
	for i := n; i < len(a.samples); i++ {
		a.samples[i] = 0
	}
	window.Apply(a.samples, window.Hann)
	spectrum := fft.FFTReal(a.samples)

	sums := make([]float64, len(a.Levels))
	peak := 0.0
	for b := range sums {
		lo, hi := a.edges[b], a.edges[b+1]
		if hi > len(spectrum)/2 {
			hi = len(spectrum) / 2
		}
		for i := lo; i < hi; i++ {
			sums[b] += cmplx.Abs(spectrum[i])
		}
		if hi > lo {
			sums[b] /= float64(hi - lo)
		}
		peak = math.Max(peak, sums[b])
	}

	if peak > a.MaxLevel {
		a.MaxLevel = peak
	} else {
		a.MaxLevel *= 0.999
	}
	gain := 1.0
	if a.MaxLevel > 0.001 {
		gain = 1.0 / a.MaxLevel
	}
	if gain > 50.0 {
		gain = 50.0
	}
	for b, sum := range sums {
		a.Levels[b] = a.Levels[b]*0.9 + math.Min(sum*gain, 1.0)*0.1
	}
}
