package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/config"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/service/booking"
)

const shutdownTimeout = 5 * time.Second

// Bootstrap loads configuration from the environment, installs the process
// logger and telemetry providers, then builds the App. Close the App to
// flush telemetry.
func Bootstrap(ctx context.Context, opts ...booking.Option) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.Observability.ServiceName,
			Version: Version,
		},
		Environment:  logging.Environment(cfg.Observability.Environment),
		LogLevel:     cfg.LogLevel,
		SamplingRate: cfg.Observability.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	slog.SetDefault(obs.Logger())

	a, err := New(ctx, cfg, opts...)
	if err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := obs.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Warn("observability shutdown error", slog.String("error", shutdownErr.Error()))
		}
		return nil, err
	}
	a.obs = obs

	return a, nil
}
