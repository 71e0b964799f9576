package core

import "time"

// Clock supplies the elapsed time for each simulation tick, in seconds.
type Clock interface {
	Delta() float64
}

// FixedClock returns the same step every tick.
// Used by headless runs and tests where the timestep must be reproducible.
type FixedClock struct {
	Step float64
}

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 {
	return c.Step
}

// WallClock measures real time elapsed between successive Delta calls.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock creates a clock anchored at the current time.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, last: now()}
}

// Delta returns seconds since the previous call (or since creation).
func (c *WallClock) Delta() float64 {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Reset re-anchors the clock so the next Delta measures from now.
func (c *WallClock) Reset() {
	c.last = c.now()
}
