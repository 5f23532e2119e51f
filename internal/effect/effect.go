package effect

import (
	"time"

	"github.com/san-kum/saverium/internal/canvas"
)

// Effect is one animation routine.
type Effect interface {
	Name() string
	SetName(name string)
	Duration() time.Duration
	SetDuration(d time.Duration)
	// Start resets the start timestamp.
	Start(now time.Time)
	// Finished reports whether now - start >= duration.
	Finished(now time.Time) bool
	Palette() []canvas.Color
	// Update advances one frame at a fixed 60 Hz step.
	Update()
	Draw(s canvas.Surface)
}

// Factory builds a fresh, unstarted effect.
type Factory func(env Env) Effect

// Interactive effects react to the pointer while playing.
type Interactive interface {
	PointerMoved(p canvas.Point)
	Clicked(p canvas.Point)
}

// Equation effects describe the function they are plotting.
type Equation interface {
	Equation() string
}
