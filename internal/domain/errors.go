package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCapacity   = errors.New("capacity per hour must be positive")
	ErrNegativeHeadcount = errors.New("headcount must not be negative")
	ErrInvalidWeekday    = errors.New("invalid weekday")
)

// ViolationKind identifies which booking rule rejected a schedule.
type ViolationKind string

const (
	ViolationNotOnHour    ViolationKind = "not_on_hour"
	ViolationClosedDay    ViolationKind = "closed_day"
	ViolationOverCapacity ViolationKind = "over_capacity"
)

func (k ViolationKind) String() string {
	return string(k)
}

const (
	msgNotOnHour    = "Booking is only possible on the hour"
	msgClosedDay    = "Booking is not possible on %s"
	msgOverCapacity = "Number of people is over restaurant capacity per hour"
)

// ValidationError is returned when a schedule breaks a booking rule.
// Consumers may match on the message text, so it must stay stable.
type ValidationError struct {
	Kind    ViolationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same Kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is; only Kind is compared.
var (
	ErrNotOnTheHour = &ValidationError{Kind: ViolationNotOnHour, Message: msgNotOnHour}
	ErrClosedDay    = &ValidationError{Kind: ViolationClosedDay, Message: "booking is not possible on closed day"}
	ErrOverCapacity = &ValidationError{Kind: ViolationOverCapacity, Message: msgOverCapacity}
)

func NewNotOnHourError() *ValidationError {
	return &ValidationError{Kind: ViolationNotOnHour, Message: msgNotOnHour}
}

func NewClosedDayError(day time.Weekday) *ValidationError {
	return &ValidationError{Kind: ViolationClosedDay, Message: fmt.Sprintf(msgClosedDay, day)}
}

func NewOverCapacityError() *ValidationError {
	return &ValidationError{Kind: ViolationOverCapacity, Message: msgOverCapacity}
}
