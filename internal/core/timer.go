package core

import "time"

// FrameClock measures the time that passed between two frame ticks. The
// measured delta is capped at four nominal steps.
type FrameClock struct {
	step     time.Duration
	maxDelta time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFrameClock constructs a FrameClock targeting the given TPS.
func NewFrameClock(tps int) *FrameClock {
	fc := &FrameClock{now: time.Now}
	fc.SetTPS(tps)
	return fc
}

// SetTPS changes the nominal tick rate. It is safe to call from the main loop.
func (f *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	f.maxDelta = 4 * f.step
}

// Step returns the nominal duration of one tick.
func (f *FrameClock) Step() time.Duration { return f.step }

// Tick returns the time elapsed since the previous Tick. The first call
// reports one nominal step.
func (f *FrameClock) Tick() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return f.step
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	if delta > f.maxDelta {
		return f.maxDelta
	}
	return delta
}

// Reset forgets the previous tick so the next Tick reports one nominal step.
func (f *FrameClock) Reset() { f.last = time.Time{} }
