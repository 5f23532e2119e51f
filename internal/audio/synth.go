// Package audio synthesises an ambient pad and analyses it into spectrum
// bands. Nothing is played; the samples only drive visuals.
package audio

import "math"

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Gm7 add9: G2, Bb2, D3, F3, A3
var chord = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

// Synth is a mono pad of detuned triangle oscillators through a one-pole
// low pass filter.
type Synth struct {
	Time   float64
	Cutoff float64
	// Energy opens the filter. It is smoothed so jumps do not click.
	Energy float64
	energy float64
	filter float64
	freqs  []float64
}

func NewSynth() *Synth {
	return &Synth{Cutoff: 300, freqs: append([]float64(nil), chord...)}
}

// Detune multiplies every oscillator frequency by f.
func (s *Synth) Detune(f float64) {
	for i, base := range chord {
		s.freqs[i] = base * f
	}
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Fill writes len(buf) samples and advances the clock.
func (s *Synth) Fill(buf []float64) {
	dt := 1.0 / float64(SampleRate)
	s.energy = s.energy*0.995 + s.Energy*0.005
	cutoff := s.Cutoff + math.Min(s.energy/5.0, 900.0)
	g := 1.0 / float64(len(s.freqs))
	for i := range buf {
		sample := 0.0
		for j, f := range s.freqs {
			lfo := math.Sin(s.Time*0.2 + float64(j))
			sample += triangle(s.Time*f) * g * (0.7 + 0.3*lfo)
		}
		s.filter = lpf(sample, cutoff, dt, s.filter)
		buf[i] = s.filter
		s.Time += dt
	}
}
