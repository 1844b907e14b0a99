// Package timing turns host frame timestamps into simulation deltas.
package timing

import "time"

// Source supplies monotonically increasing timestamps in milliseconds.
type Source interface {
	Now() float64
}

// Clock converts successive timestamps into elapsed milliseconds.
type Clock struct {
	// MaxDelta caps a single delta so a long stall cannot move entities across
	// the playfield in one tick. Zero disables the cap.
	MaxDelta float64

	last    float64
	started bool
}

func NewClock(maxDelta float64) *Clock {
	return &Clock{MaxDelta: maxDelta}
}

// Advance records now and returns the time elapsed since the previous call.
// The first call after construction or Reset returns 0. A timestamp earlier than
// the previous one yields 0 and does not move the clock backwards.
func (c *Clock) Advance(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	delta := now - c.last
	if delta < 0 {
		return 0
	}
	c.last = now

	if c.MaxDelta > 0 && delta > c.MaxDelta {
		delta = c.MaxDelta
	}
	return delta
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = 0
}

// Monotonic reads wall-clock time elapsed since its creation.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Now() float64 {
	return float64(time.Since(m.start)) / float64(time.Millisecond)
}

// Fixed advances by a constant step on every call, for deterministic runs.
type Fixed struct {
	Step float64
	now  float64
}

// NewFixed returns a Fixed source stepping 1000/tps milliseconds per call.
func NewFixed(tps int) *Fixed {
	if tps <= 0 {
		tps = 60
	}
	return &Fixed{Step: 1000 / float64(tps)}
}

func (f *Fixed) Now() float64 {
	f.now += f.Step
	return f.now
}
