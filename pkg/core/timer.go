package core

import "time"

// FixedStep paces simulation steps at a fixed interval independent of the
// frame rate of whatever loop polls it.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. A
// non-positive interval fires on every poll.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

// SetInterval changes the pacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.interval = interval
}

// Interval reports the current pacing interval.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether the simulation should advance by one step.
// At most one step is granted per poll so a stalled loop does not burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.interval {
		return false
	}
	f.accumulator -= f.interval
	if f.accumulator > f.interval {
		f.accumulator = f.interval
	}
	return true
}
