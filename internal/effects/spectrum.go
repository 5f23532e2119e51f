package effects

import (
	"math"
	"time"

	"github.com/san-kum/saverium/internal/audio"
	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/effect"
)

const spectrumBars = 32

// SpectrumBars animates an analyser over the built-in pad synth.
type SpectrumBars struct {
	effect.Base
	env    effect.Env
	synth  *audio.Synth
	an     *audio.Analyzer
	buf    []float64
	peaks  []float64
	frames int
}

func NewSpectrumBars(env effect.Env) effect.Effect {
	s := &SpectrumBars{
		Base:  effect.NewBase("Spectrum Bars", 8*time.Second, env.Rand),
		env:   env,
		synth: audio.NewSynth(),
		an:    audio.NewAnalyzer(spectrumBars),
		// one frame of audio at 60 fps
		buf:   make([]float64, audio.SampleRate/60),
		peaks: make([]float64, spectrumBars),
	}
	s.synth.Detune(env.Uniform(0.8, 1.6))
	return s
}

func (s *SpectrumBars) Update() {
	s.frames++
	// swell the filter so the upper bands breathe
	s.synth.Energy = 2500 * (1 + math.Sin(float64(s.frames)*0.03))
	s.synth.Fill(s.buf)
	s.an.Process(s.buf[len(s.buf)-audio.BufferSize:])
	for i, l := range s.an.Levels {
		if l > s.peaks[i] {
			s.peaks[i] = l
		} else {
			s.peaks[i] = math.Max(0, s.peaks[i]-0.005)
		}
	}
}

func (s *SpectrumBars) Draw(sf canvas.Surface) {
	w, h := s.env.Width, s.env.Height
	slot := w / spectrumBars
	base := h * 0.9
	maxH := h * 0.75
	for i, l := range s.an.Levels {
		x := float64(i)*slot + slot*0.1
		bw := slot * 0.8
		bh := l * maxH
		col := canvas.HSV(float64(i)*300/spectrumBars, 0.8, 0.5+0.5*l)
		if bh >= 1 {
			sf.Rect(x, base-bh, bw, bh, 0, col)
		}
		py := base - s.peaks[i]*maxH
		sf.Rect(x, py-4, bw, 4, 0, canvas.White)
	}
	sf.Line(canvas.Pt(0, base), canvas.Pt(w, base), 2, canvas.DarkGray)
}
