package domain

import (
	"time"
)

// Schedule is a single reservation request. It is immutable once built.
type Schedule struct {
	dateTime  time.Time
	headcount int
	customer  Customer
}

func NewSchedule(dateTime time.Time, headcount int, customer Customer) (Schedule, error) {
	if headcount < 0 {
		return Schedule{}, ErrNegativeHeadcount
	}

	return Schedule{
		dateTime:  dateTime,
		headcount: headcount,
		customer:  customer,
	}, nil
}

func (s Schedule) DateTime() time.Time {
	return s.dateTime
}

func (s Schedule) Headcount() int {
	return s.headcount
}

func (s Schedule) Customer() Customer {
	return s.customer
}

// IsOnTheHour reports whether minute, second and sub-second parts are all zero.
func (s Schedule) IsOnTheHour() bool {
	return s.dateTime.Minute() == 0 &&
		s.dateTime.Second() == 0 &&
		s.dateTime.Nanosecond() == 0
}

// SameSlot reports whether both schedules start at the same instant.
// Equal hours on different dates are different slots.
func (s Schedule) SameSlot(other Schedule) bool {
	return s.dateTime.Equal(other.dateTime)
}

func (s Schedule) Equal(other Schedule) bool {
	return s.SameSlot(other) &&
		s.headcount == other.headcount &&
		s.customer == other.customer
}

func SlotKey(t time.Time) string {
	return t.UTC().Format("2006-01-02-15-04")
}
