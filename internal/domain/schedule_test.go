package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewSchedule_NegativeHeadcount(t *testing.T) {
	_, err := NewSchedule(time.Date(2024, 7, 20, 11, 0, 0, 0, time.UTC), -1, NewCustomer("jwh", "010-0000-0000"))
	if !errors.Is(err, ErrNegativeHeadcount) {
		t.Errorf("NewSchedule() error = %v, want %v", err, ErrNegativeHeadcount)
	}
}

func TestSchedule_IsOnTheHour(t *testing.T) {
	tests := []struct {
		name     string
		dateTime time.Time
		want     bool
	}{
		{
			name:     "exact hour",
			dateTime: time.Date(2024, 7, 20, 11, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "midnight",
			dateTime: time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "minutes set",
			dateTime: time.Date(2024, 7, 20, 10, 47, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "seconds set",
			dateTime: time.Date(2024, 7, 20, 11, 0, 1, 0, time.UTC),
			want:     false,
		},
		{
			name:     "sub-second set",
			dateTime: time.Date(2024, 7, 20, 11, 0, 0, 1, time.UTC),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchedule(tt.dateTime, 2, NewCustomer("jwh", "010-0000-0000"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := s.IsOnTheHour(); got != tt.want {
				t.Errorf("IsOnTheHour() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchedule_SameSlot(t *testing.T) {
	customer := NewCustomer("jwh", "010-0000-0000")
	base := time.Date(2024, 7, 20, 11, 0, 0, 0, time.UTC)

	a, _ := NewSchedule(base, 2, customer)
	sameInstant, _ := NewSchedule(base.In(time.FixedZone("KST", 9*60*60)), 4, customer)
	nextDay, _ := NewSchedule(base.AddDate(0, 0, 1), 2, customer)

	if !a.SameSlot(sameInstant) {
		t.Error("same instant in another zone should be the same slot")
	}
	if a.SameSlot(nextDay) {
		t.Error("same hour on another date should not be the same slot")
	}
}

func TestSchedule_Equal(t *testing.T) {
	at := time.Date(2024, 7, 20, 11, 0, 0, 0, time.UTC)
	a, _ := NewSchedule(at, 2, NewCustomer("jwh", "010-0000-0000"))
	b, _ := NewSchedule(at, 2, NewCustomer("jwh", "010-0000-0000"))
	otherCount, _ := NewSchedule(at, 3, NewCustomer("jwh", "010-0000-0000"))
	otherEmail, _ := NewSchedule(at, 2, NewCustomerWithEmail("jwh", "010-0000-0000", "jwh@example.com"))

	if !a.Equal(b) {
		t.Error("schedules with equal values should be equal")
	}
	if a.Equal(otherCount) {
		t.Error("different headcount should not be equal")
	}
	if a.Equal(otherEmail) {
		t.Error("different customer should not be equal")
	}
}

func TestCustomer_HasEmail(t *testing.T) {
	if NewCustomer("jwh", "010-0000-0000").HasEmail() {
		t.Error("customer without email reports HasEmail")
	}
	if !NewCustomerWithEmail("jwh", "010-0000-0000", "jwh@example.com").HasEmail() {
		t.Error("customer with email reports no email")
	}
}
