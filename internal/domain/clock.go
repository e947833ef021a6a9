package domain

import "time"

// Clock abstracts time retrieval so booking rules are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedClock returns a clock frozen at t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
