package dateutil

import "time"

// Clock abstracts "now" so rollover and streak behavior can be tested against
// a pinned day.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the ambient system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Advance it between test steps to
// simulate day rollover.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the fixed clock forward.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// AdvanceDays moves the fixed clock forward n calendar days.
func (c *FixedClock) AdvanceDays(n int) { c.T = c.T.AddDate(0, 0, n) }

// Today returns the current calendar day per the clock.
func Today(c Clock) Day {
	return DayOf(c.Now())
}
