// Package kinetics integrates the small ODE systems that drive the
// physics-based effects.
//
// Each model implements [System]. [RK4] advances a state by one fixed step
// and [Sim] wraps a system, its state and the clock so an effect can call
// [Sim.Advance] once per frame:
//
//   - [Lorenz]: butterfly attractor
//   - [DoublePendulum]: chaotic coupled pendulum
//   - [CoupledPendulums]: two pendulums joined by a spring
//
// # Divergence
//
// When a step produces NaN or Inf, Advance restores the system's default
// state and returns [ErrInvalidState] so the animation keeps running.
package kinetics
