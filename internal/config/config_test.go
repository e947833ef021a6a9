package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CAPACITY_PER_HOUR", "CLOSED_WEEKDAY", "REDIS_ADDR", "REDIS_DB",
		"NOTIFICATION_OUTBOX_DISABLED", "NOTIFICATION_OUTBOX_MAX_LEN", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Booking.CapacityPerHour != 10 {
		t.Errorf("CapacityPerHour = %d, want 10", cfg.Booking.CapacityPerHour)
	}
	if _, closed := cfg.Booking.ClosedDay.Weekday(); closed {
		t.Errorf("ClosedDay = %v, want none", cfg.Booking.ClosedDay)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Outbox.Disabled || cfg.Outbox.StreamPrefix != "booking:outbox:" || cfg.Outbox.MaxLen != 10000 {
		t.Errorf("Outbox = %+v", cfg.Outbox)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_BookingFromEnv(t *testing.T) {
	t.Setenv("CAPACITY_PER_HOUR", "25")
	t.Setenv("CLOSED_WEEKDAY", "sunday")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Booking.CapacityPerHour != 25 {
		t.Errorf("CapacityPerHour = %d, want 25", cfg.Booking.CapacityPerHour)
	}
	if day, closed := cfg.Booking.ClosedDay.Weekday(); !closed || day != time.Sunday {
		t.Errorf("ClosedDay = %v, want Sunday", cfg.Booking.ClosedDay)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "capacity not a number", key: "CAPACITY_PER_HOUR", value: "ten"},
		{name: "unknown weekday", key: "CLOSED_WEEKDAY", value: "caturday"},
		{name: "redis db not a number", key: "REDIS_DB", value: "zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q error = nil, want error", tt.key, tt.value)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := &Config{
		Booking: &BookingConfig{CapacityPerHour: 0},
		Redis:   &RedisConfig{},
		Outbox:  &OutboxConfig{},
	}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidCapacity)
	}
	if !errors.Is(err, ErrRedisAddrMissing) {
		t.Errorf("Validate() error = %v, want %v", err, ErrRedisAddrMissing)
	}
}

func TestValidate_RedisNotRequiredWhenOutboxDisabled(t *testing.T) {
	cfg := &Config{
		Booking: &BookingConfig{CapacityPerHour: 10},
		Redis:   &RedisConfig{},
		Outbox:  &OutboxConfig{Disabled: true},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestRedisConfig_Options(t *testing.T) {
	plain := (&RedisConfig{Addr: "redis:6379", DB: 2}).Options()
	if plain.Addr != "redis:6379" || plain.DB != 2 || plain.TLSConfig != nil {
		t.Errorf("Options() = %+v", plain)
	}

	secure := (&RedisConfig{Addr: "redis:6380", TLS: true}).Options()
	if secure.TLSConfig == nil {
		t.Error("TLS option should set TLSConfig")
	}
}
