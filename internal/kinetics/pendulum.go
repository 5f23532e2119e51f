package kinetics

import "math"

const (
	DefaultMass    = 1.0
	DefaultLength  = 1.0
	DefaultGravity = 9.81
)

// DoublePendulum state: [theta1, theta2, omega1, omega2]
type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
	Start   State
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{
		M1: DefaultMass, M2: DefaultMass,
		L1: DefaultLength, L2: DefaultLength,
		Gravity: DefaultGravity,
		Start:   State{math.Pi / 2, math.Pi, 0, 0},
	}
}

func (d *DoublePendulum) StateDim() int       { return 4 }
func (d *DoublePendulum) DefaultState() State { return d.Start.Clone() }

func (d *DoublePendulum) Derive(x State, _ float64) State {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	alpha1 := (m2*l1*omega1*omega1*sinD*cosD +
		m2*g*math.Sin(theta2)*cosD +
		m2*l2*omega2*omega2*sinD -
		(m1+m2)*g*math.Sin(theta1)) / den1

	alpha2 := (-m2*l2*omega2*omega2*sinD*cosD +
		(m1+m2)*g*math.Sin(theta1)*cosD -
		(m1+m2)*l1*omega1*omega1*sinD -
		(m1+m2)*g*math.Sin(theta2)) / den2

	return State{omega1, omega2, alpha1, alpha2}
}

func (d *DoublePendulum) Energy(x State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := l1*l1*omega1*omega1 + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// CoupledPendulums implements two pendulums connected by a spring.
// State: [theta1, omega1, theta2, omega2]
type CoupledPendulums struct {
	L float64 // length
	G float64
	K float64 // spring constant
	M float64 // mass of each bob
}

func NewCoupledPendulums() *CoupledPendulums {
	return &CoupledPendulums{L: 1.0, G: 9.81, K: 20.0, M: 1.0}
}

func (c *CoupledPendulums) StateDim() int { return 4 }

func (c *CoupledPendulums) Derive(state State, _ float64) State {
	theta1, omega1, theta2, omega2 := state[0], state[1], state[2], state[3]

	coupling := c.K * (theta2 - theta1) / c.M
	alpha1 := -c.G/c.L*math.Sin(theta1) + coupling/c.L
	alpha2 := -c.G/c.L*math.Sin(theta2) - coupling/c.L

	return State{omega1, alpha1, omega2, alpha2}
}

// DefaultState displaces only the first pendulum.
func (c *CoupledPendulums) DefaultState() State {
	return State{0.5, 0.0, 0.0, 0.0}
}
