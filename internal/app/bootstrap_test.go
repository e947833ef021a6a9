package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/service/booking"
)

func TestBootstrap_FromEnvironment(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Setenv("CAPACITY_PER_HOUR", "4")
	t.Setenv("CLOSED_WEEKDAY", "monday")
	t.Setenv("NOTIFICATION_OUTBOX_DISABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("LOG_LEVEL", "error")

	ctx := context.Background()
	a, err := Bootstrap(ctx, booking.WithClock(domain.FixedClock(saturdayNoon)))
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	scheduler := a.Scheduler()
	if scheduler.CapacityPerHour() != 4 {
		t.Errorf("CapacityPerHour() = %d, want 4", scheduler.CapacityPerHour())
	}
	if scheduler.ClosedDay().String() != "Monday" {
		t.Errorf("ClosedDay() = %v, want Monday", scheduler.ClosedDay())
	}

	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestBootstrap_InvalidEnvironment(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Setenv("CAPACITY_PER_HOUR", "-3")
	t.Setenv("NOTIFICATION_OUTBOX_DISABLED", "true")

	if _, err := Bootstrap(context.Background()); err == nil {
		t.Error("Bootstrap() error = nil, want configuration error")
	}
}
