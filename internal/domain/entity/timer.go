package entity

// Timer is a self-contained millisecond countdown. It starts expired;
// Reset arms it for the full duration. Each owner updates its own timers
// once per tick.
type Timer struct {
	duration float64
	elapsed  float64
}

// NewTimer creates an expired timer with the given duration in milliseconds.
func NewTimer(durationMS float64) Timer {
	return Timer{duration: durationMS, elapsed: durationMS}
}

// Reset arms the timer for its full duration.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Update advances the timer. Expired timers stay expired.
func (t *Timer) Update(elapsedMS float64) {
	if t.Active() {
		t.elapsed += elapsedMS
	}
}

// Active reports whether the timer is still counting down.
func (t *Timer) Active() bool {
	return t.elapsed < t.duration
}

// Expired reports whether the timer has run out.
func (t *Timer) Expired() bool {
	return !t.Active()
}

// CurrentTime returns the milliseconds elapsed since the last Reset.
func (t *Timer) CurrentTime() float64 {
	return t.elapsed
}
