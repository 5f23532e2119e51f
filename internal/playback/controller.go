// Package playback owns the effect that is currently on screen and decides
// when and where to advance.
package playback

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/registry"
)

var (
	ErrEmptyRegistry = errors.New("playback: registry is empty")
	ErrOutOfRange    = errors.New("playback: index out of range")
)

type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "idle"
}

type Reason string

const (
	ReasonSelect Reason = "select"
	ReasonAuto   Reason = "auto"
	ReasonSkip   Reason = "skip"
)

// Switch describes one transition to a new current effect.
type Switch struct {
	Entry  registry.Entry
	Index  int
	Reason Reason
	Mode   config.PlayMode
	At     time.Time
}

type Observer interface {
	Switched(Switch)
}

type ObserverFunc func(Switch)

func (f ObserverFunc) Switched(s Switch) { f(s) }

type Controller struct {
	reg      *registry.Registry
	settings *config.Settings
	env      effect.Env

	Now  func() time.Time
	Rand *rand.Rand
	// EntryDurations plays each entry for its own duration instead of the
	// one in Settings.
	EntryDurations bool

	state     State
	current   effect.Effect
	index     int
	observers []Observer
}

func NewController(reg *registry.Registry, settings *config.Settings, env effect.Env) *Controller {
	return &Controller{
		reg:      reg,
		settings: settings,
		env:      env,
		Now:      time.Now,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		index:    -1,
	}
}

func (c *Controller) Observe(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) State() State                 { return c.state }
func (c *Controller) Current() effect.Effect       { return c.current }
func (c *Controller) Index() int                   { return c.index }
func (c *Controller) Settings() *config.Settings   { return c.settings }
func (c *Controller) Registry() *registry.Registry { return c.reg }

// Remaining is the time left before the current effect finishes.
func (c *Controller) Remaining() time.Duration {
	if c.current == nil {
		return 0
	}
	left := c.current.Duration() - c.Now().Sub(startOf(c.current))
	if left < 0 {
		return 0
	}
	return left
}

func startOf(fx effect.Effect) time.Time {
	if s, ok := fx.(interface{ StartedAt() time.Time }); ok {
		return s.StartedAt()
	}
	return time.Time{}
}

// Select makes entry i current with a fresh instance.
func (c *Controller) Select(i int) error {
	return c.activate(i, ReasonSelect)
}

// SelectName selects the entry found by registry.Find.
func (c *Controller) SelectName(name string) error {
	e, err := c.reg.Find(name)
	if err != nil {
		return err
	}
	return c.Select(c.reg.Index(e.Name))
}

// SelectRandom selects a uniformly random entry.
func (c *Controller) SelectRandom() error {
	if c.reg.Len() == 0 {
		return ErrEmptyRegistry
	}
	return c.Select(c.Rand.Intn(c.reg.Len()))
}

func (c *Controller) activate(i int, why Reason) error {
	if c.reg.Len() == 0 {
		return ErrEmptyRegistry
	}
	if i < 0 || i >= c.reg.Len() {
		return fmt.Errorf("select %d of %d: %w", i, c.reg.Len(), ErrOutOfRange)
	}
	e := c.reg.At(i)
	fx := e.New(c.env)
	if !c.EntryDurations {
		fx.SetDuration(c.settings.Duration())
	}
	now := c.Now()
	fx.Start(now)
	c.current, c.index, c.state = fx, i, Playing

	sw := Switch{Entry: e, Index: i, Reason: why, Mode: c.settings.PlayMode, At: now}
	for _, o := range c.observers {
		o.Switched(sw)
	}
	return nil
}

// next picks the following index: uniform over the whole registry in
// random mode (the current entry may repeat), the successor with
// wraparound in sequential mode.
func (c *Controller) next() int {
	n := c.reg.Len()
	if c.settings.PlayMode == config.Random {
		return c.Rand.Intn(n)
	}
	return (c.index + 1) % n
}

// Skip advances regardless of the auto-advance setting.
func (c *Controller) Skip() {
	if c.state != Playing {
		return
	}
	c.activate(c.next(), ReasonSkip)
}

// Tick runs one frame: advance if the current effect has timed out and
// auto-advance is on, then clear s, update once and draw once.
func (c *Controller) Tick(s canvas.Surface) {
	if c.state != Playing {
		return
	}
	if c.settings.AutoAdvance && c.current.Finished(c.Now()) {
		c.activate(c.next(), ReasonAuto)
	}
	s.Fill(canvas.Black)
	c.current.Update()
	c.current.Draw(s)
}

// Stop returns to idle. The index is kept so a later Skip or sequential
// advance resumes from it.
func (c *Controller) Stop() {
	c.state = Idle
	c.current = nil
}

func (c *Controller) Pointer(p canvas.Point) {
	if fx, ok := c.current.(effect.Interactive); ok {
		fx.PointerMoved(p)
	}
}

func (c *Controller) Click(p canvas.Point) {
	if fx, ok := c.current.(effect.Interactive); ok {
		fx.Clicked(p)
	}
}
