package core

import "time"

// DefaultTickInterval is the time between generations while running.
const DefaultTickInterval = 70 * time.Millisecond

// DefaultMaxTicksPerFrame bounds how many ticks a single Advance may report.
const DefaultMaxTicksPerFrame = 8

// FixedStep converts frame deltas into a steady number of ticks. Unlike a
// reset-on-fire timer it keeps the remainder, so a slow frame yields several
// ticks and the long-run rate matches the interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxTicks    int
}

// NewFixedStep constructs a FixedStep firing every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{maxTicks: DefaultMaxTicksPerFrame}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. Non-positive values fall back to
// DefaultTickInterval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// SetTPS changes the tick rate expressed in ticks per second.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.SetInterval(0)
		return
	}
	f.SetInterval(time.Second / time.Duration(tps))
}

// SetMaxTicks caps the ticks reported by a single Advance. Zero or less
// disables the cap.
func (f *FixedStep) SetMaxTicks(n int) { f.maxTicks = n }

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pending returns the time accumulated towards the next tick.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Reset drops any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance adds delta and returns how many ticks are due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
	}
	if f.maxTicks > 0 && ticks > f.maxTicks {
		ticks = f.maxTicks
	}
	return ticks
}
