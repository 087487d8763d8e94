package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	fixedTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{fixedTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.fixedTime
}
