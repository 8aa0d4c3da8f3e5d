// Package draw implements the spin-then-settle cycle shared by every mode.
//
// A cycle starts with one preview, replaces it on every tick and, once the
// tick threshold is reached, commits a final result. The preview and the
// committed result are tracked separately so a half-finished spin is never
// mistaken for a result.
package draw

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSpinning is returned for requests that are only valid while idle.
	ErrSpinning = errors.New("draw: shuffle in progress")
	// ErrNotEnoughInput is returned when a shuffle is requested below the
	// mode's minimum number of valid entries.
	ErrNotEnoughInput = errors.New("draw: not enough valid entries")
)

// State of a machine.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step describes what a tick did.
type Step int

const (
	// Ignored ticks belong to another cycle or arrived while idle.
	Ignored Step = iota
	// Continued ticks replaced the preview.
	Continued
	// Settled ticks committed the final result.
	Settled
)

// Draw is a committed result.
type Draw[R any] struct {
	ID        uuid.UUID
	Result    R
	Ticks     int
	StartedAt time.Time
	SettledAt time.Time
}

// Machine drives one mode's spin cycles. It is not safe for concurrent use;
// the UI loop owns it.
type Machine[R any] struct {
	minimum   int
	threshold int
	now       func() time.Time

	state     State
	cycle     uuid.UUID
	ticks     int
	startedAt time.Time
	generate  func() R

	preview   *R
	committed *Draw[R]
}

// New returns an idle machine that needs at least minimum valid entries to
// start and settles after threshold ticks.
func New[R any](minimum, threshold int) *Machine[R] {
	if threshold < 1 {
		threshold = 1
	}
	return &Machine[R]{minimum: minimum, threshold: threshold, now: time.Now}
}

func (m *Machine[R]) State() State     { return m.state }
func (m *Machine[R]) Spinning() bool   { return m.state == Spinning }
func (m *Machine[R]) Minimum() int     { return m.minimum }
func (m *Machine[R]) Threshold() int   { return m.threshold }
func (m *Machine[R]) Ticks() int       { return m.ticks }
func (m *Machine[R]) Cycle() uuid.UUID { return m.cycle }

// CanStart reports whether a shuffle over valid entries would be accepted.
func (m *Machine[R]) CanStart(valid int) bool {
	return m.state == Idle && valid >= m.minimum
}

// Start begins a cycle. generate is called once immediately for the first
// preview, once per tick, and once more for the final result.
func (m *Machine[R]) Start(valid int, generate func() R) (uuid.UUID, error) {
	if m.state == Spinning {
		return uuid.Nil, ErrSpinning
	}
	if valid < m.minimum {
		return uuid.Nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughInput, valid, m.minimum)
	}
	m.state = Spinning
	m.cycle = uuid.New()
	m.ticks = 0
	m.startedAt = m.now()
	m.generate = generate
	first := generate()
	m.preview = &first
	return m.cycle, nil
}

// Tick advances the cycle identified by cycle.
func (m *Machine[R]) Tick(cycle uuid.UUID) Step {
	if m.state != Spinning || cycle != m.cycle {
		return Ignored
	}
	m.ticks++
	if m.ticks < m.threshold {
		next := m.generate()
		m.preview = &next
		return Continued
	}
	m.committed = &Draw[R]{
		ID:        m.cycle,
		Result:    m.generate(),
		Ticks:     m.ticks,
		StartedAt: m.startedAt,
		SettledAt: m.now(),
	}
	m.preview = nil
	m.generate = nil
	m.state = Idle
	return Settled
}

// Reset clears both the preview and the committed result.
func (m *Machine[R]) Reset() error {
	if m.state == Spinning {
		return ErrSpinning
	}
	m.preview = nil
	m.committed = nil
	m.ticks = 0
	return nil
}

// Discard drops the committed result without touching a running cycle.
func (m *Machine[R]) Discard() {
	m.committed = nil
}

// Preview returns the in-flight frame, if any.
func (m *Machine[R]) Preview() (R, bool) {
	if m.preview == nil {
		var zero R
		return zero, false
	}
	return *m.preview, true
}

// Committed returns the last settled draw, if any.
func (m *Machine[R]) Committed() (Draw[R], bool) {
	if m.committed == nil {
		return Draw[R]{}, false
	}
	return *m.committed, true
}

// Display returns what should be on screen: the preview while spinning,
// otherwise the committed result.
func (m *Machine[R]) Display() (R, bool) {
	if r, ok := m.Preview(); ok {
		return r, true
	}
	if d, ok := m.Committed(); ok {
		return d.Result, true
	}
	var zero R
	return zero, false
}
