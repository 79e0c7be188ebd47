// Package clock provides the frame clock abstraction and TimeStep.
package clock

import "time"

// Clock reports elapsed seconds from an arbitrary fixed origin.
type Clock interface {
	Time() float64
}

// TimeStep is the elapsed time between two frames, in seconds.
type TimeStep float32

func (ts TimeStep) Seconds() float32      { return float32(ts) }
func (ts TimeStep) Milliseconds() float32 { return float32(ts) * 1000 }

// System is a Clock backed by the monotonic wall clock.
type System struct {
	start time.Time
}

// NewSystem returns a System clock whose origin is now.
func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) Time() float64 {
	return time.Since(c.start).Seconds()
}

// Sequence replays a fixed list of readings, then repeats the last one.
// It is meant for deterministic loops in tests and tools.
type Sequence struct {
	readings []float64
	next     int
}

// NewSequence returns a Sequence yielding readings in order.
func NewSequence(readings ...float64) *Sequence {
	return &Sequence{readings: readings}
}

func (c *Sequence) Time() float64 {
	if len(c.readings) == 0 {
		return 0
	}
	if c.next >= len(c.readings) {
		return c.readings[len(c.readings)-1]
	}
	v := c.readings[c.next]
	c.next++
	return v
}

// FixedStep advances by a constant step on every reading, starting at
// zero. Recording uses it so frame n is rendered at n/fps regardless of
// how long the frame took.
type FixedStep struct {
	step float64
	n    int
}

func NewFixedStep(step float64) *FixedStep {
	return &FixedStep{step: step}
}

func (c *FixedStep) Time() float64 {
	t := float64(c.n) * c.step
	c.n++
	return t
}
