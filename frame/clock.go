package frame

import "time"

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepClock only moves when told to; offscreen rendering uses it to give every frame
// an exact, reproducible timestamp. Not safe for concurrent use.
type StepClock struct {
	now  time.Time
	step time.Duration
}

// NewStepClock starts at start; Step moves it forward by step
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

func (c *StepClock) Now() time.Time {
	return c.now
}

// Step advances by one frame interval and returns the new reading
func (c *StepClock) Step() time.Time {
	return c.Advance(c.step)
}

// Advance moves the clock by d; negative values are ignored
func (c *StepClock) Advance(d time.Duration) time.Time {
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}
