package tetris

import "time"

// Clock gates gravity steps on a monotonic timestamp supplied by the caller.
// A step is due once strictly more than Interval has passed since the last
// one; earlier callbacks are no-ops.
type Clock struct {
	Interval time.Duration
	last     time.Duration
}

// NewClock creates a clock whose first step is due one interval after zero.
func NewClock(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

// Due reports whether a step should run at now, and if so records now as
// the time of the last step.
func (c *Clock) Due(now time.Duration) bool {
	if now-c.last <= c.Interval {
		return false
	}
	c.last = now
	return true
}

// Reset makes now the time of the last step.
func (c *Clock) Reset(now time.Duration) {
	c.last = now
}
