package kinetics

import "fmt"

// Sim advances a system by Substeps RK4 steps of Dt per frame.
type Sim struct {
	Sys      System
	State    State
	T, Dt    float64
	Substeps int
	rk       *RK4
}

func NewSim(sys System, dt float64, substeps int) *Sim {
	if substeps < 1 {
		substeps = 1
	}
	return &Sim{Sys: sys, State: sys.DefaultState(), Dt: dt, Substeps: substeps, rk: NewRK4()}
}

// SetState replaces the current state after checking its dimension.
func (s *Sim) SetState(x State) error {
	if len(x) != s.Sys.StateDim() {
		return fmt.Errorf("set state: got %d values, want %d: %w", len(x), s.Sys.StateDim(), ErrDimensionMismatch)
	}
	s.State = x.Clone()
	return nil
}

// Advance runs one frame worth of substeps.
func (s *Sim) Advance() error {
	for i := 0; i < s.Substeps; i++ {
		next := s.rk.Step(s.Sys, s.State, s.T, s.Dt)
		if !next.IsValid() {
			s.State = s.Sys.DefaultState()
			return fmt.Errorf("t=%.3f: %w", s.T, ErrInvalidState)
		}
		s.State = next
		s.T += s.Dt
	}
	return nil
}

// Energy returns the current energy, or 0 when the system has none.
func (s *Sim) Energy() float64 {
	if h, ok := s.Sys.(Hamiltonian); ok {
		return h.Energy(s.State)
	}
	return 0
}
