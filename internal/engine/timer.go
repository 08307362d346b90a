package engine

import "time"

// Timer is a recurring fixed-period timer driven by frame deltas rather than
// the wall clock, so it is independent of the frame rate and testable.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
	fired   uint64
}

// NewTimer creates a timer with the given period.
// A non-positive period never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Advance adds dt to the timer and returns how many periods completed.
// The remainder carries over to the next call.
func (t *Timer) Advance(dt time.Duration) int {
	if t.period <= 0 || dt <= 0 {
		return 0
	}

	t.elapsed += dt
	n := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(n) * t.period
	t.fired += uint64(n)
	return n
}

// Restart discards the accumulated time; the next fire is a full period away.
func (t *Timer) Restart() {
	t.elapsed = 0
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Elapsed returns the time accumulated toward the next fire.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fired returns the total number of fires since creation.
func (t *Timer) Fired() uint64 {
	return t.fired
}

// MaxFrameDelta caps a single frame's delta so a stalled terminal does not
// teleport bodies or release a burst of spawn ticks.
const MaxFrameDelta = 100 * time.Millisecond

// FrameClock turns frame timestamps into clamped deltas.
type FrameClock struct {
	last time.Time
}

// Tick returns the time since the previous tick, clamped to
// [0, MaxFrameDelta]. The first tick returns zero.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
