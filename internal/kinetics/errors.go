package kinetics

import "errors"

var (
	// ErrInvalidState indicates a state vector with NaN or Inf values.
	ErrInvalidState = errors.New("kinetics: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates a state whose length does not match the system.
	ErrDimensionMismatch = errors.New("kinetics: dimension mismatch between state and system")
)
