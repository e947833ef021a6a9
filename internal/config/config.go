package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	LogLevel      slog.Level
	Booking       *BookingConfig
	Redis         *RedisConfig
	Outbox        *OutboxConfig
	Observability ObservabilityConfig
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	SamplingRate float64
}

func Load() (*Config, error) {
	bookingConfig, err := LoadBookingConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "booking-scheduler"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	samplingRate := 1.0
	if v := os.Getenv("OTEL_SAMPLING_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			samplingRate = parsed
		}
	}

	return &Config{
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		Booking:  bookingConfig,
		Redis:    redisConfig,
		Outbox:   LoadOutboxConfig(),
		Observability: ObservabilityConfig{
			ServiceName:  serviceName,
			Environment:  env,
			SamplingRate: samplingRate,
		},
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
