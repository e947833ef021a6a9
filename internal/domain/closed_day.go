package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClosedDay is the weekday on which the restaurant takes no bookings.
// The zero value means the restaurant is open every day.
type ClosedDay struct {
	weekday time.Weekday
	set     bool
}

func NoClosedDay() ClosedDay {
	return ClosedDay{}
}

func ClosedOn(weekday time.Weekday) ClosedDay {
	return ClosedDay{weekday: weekday, set: true}
}

// ParseClosedDay accepts an English weekday name (any case) or
// "" / "none" for no closed day.
func ParseClosedDay(s string) (ClosedDay, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "none" {
		return NoClosedDay(), nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == v {
			return ClosedOn(d), nil
		}
	}

	return ClosedDay{}, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func (c ClosedDay) Weekday() (time.Weekday, bool) {
	return c.weekday, c.set
}

func (c ClosedDay) IsClosed(t time.Time) bool {
	return c.set && t.Weekday() == c.weekday
}

func (c ClosedDay) String() string {
	if !c.set {
		return "none"
	}
	return c.weekday.String()
}
