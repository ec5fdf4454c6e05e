package simulation

import (
	"sync"
	"time"
)

// Clock returns the current instant. time.Now is the real-time clock.
type Clock func() time.Time

// SteppedClock is a manually advanced clock for accelerated runs and tests
type SteppedClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewSteppedClock creates a clock starting at start that advances by step
func NewSteppedClock(start time.Time, step time.Duration) *SteppedClock {
	return &SteppedClock{now: start, step: step}
}

// Now returns the clock's current instant
func (c *SteppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by one step and returns the new instant
func (c *SteppedClock) Advance() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}
