package flappy

// Timer is a repeating countdown driven by tick deltas.
type Timer struct {
	interval float64
	elapsed  float64
}

// NewTimer creates a repeating timer. Interval must be positive.
func NewTimer(interval float64) Timer {
	return Timer{interval: interval}
}

// Advance adds dt seconds and returns how many times the timer fired.
// A large dt can fire several times; the remainder carries over.
func (t *Timer) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fired++
	}
	return fired
}

// Elapsed returns the time accumulated since the last firing.
func (t Timer) Elapsed() float64 {
	return t.elapsed
}
