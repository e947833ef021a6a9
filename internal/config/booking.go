package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
)

const (
	capacityPerHourEnv = "CAPACITY_PER_HOUR"
	closedWeekdayEnv   = "CLOSED_WEEKDAY"

	defaultCapacityPerHour = 10
)

type BookingConfig struct {
	CapacityPerHour int
	ClosedDay       domain.ClosedDay
}

func LoadBookingConfig() (*BookingConfig, error) {
	capacity := defaultCapacityPerHour
	if v := os.Getenv(capacityPerHourEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCapacity, v)
		}
		capacity = parsed
	}

	closedDay, err := domain.ParseClosedDay(os.Getenv(closedWeekdayEnv))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", closedWeekdayEnv, err)
	}

	return &BookingConfig{
		CapacityPerHour: capacity,
		ClosedDay:       closedDay,
	}, nil
}

func (c *BookingConfig) Validate() error {
	if c == nil || c.CapacityPerHour <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
