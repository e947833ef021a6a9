package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/config"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/health"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/infra/notification"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/service/booking"
)

// Version is set via ldflags at build time
var Version = "dev"

// App wires a booking scheduler to its notification outbox.
type App struct {
	scheduler   *booking.Scheduler
	redisClient *redis.Client
	health      *health.Checker
	obs         *observability.Resources
}

// New builds the scheduler from cfg. When the outbox is enabled Redis must be
// reachable; otherwise notifications are only logged.
func New(ctx context.Context, cfg *config.Config, opts ...booking.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	bookingMetrics, err := metrics.NewBookingMetrics()
	if err != nil {
		return nil, fmt.Errorf("init booking metrics: %w", err)
	}

	var (
		smsSender   domain.SmsSender
		mailSender  domain.MailSender
		redisClient *redis.Client
	)

	if cfg.Outbox.Disabled {
		slog.WarnContext(ctx, "notification outbox disabled, notifications will only be logged")
		smsSender = notification.NewLogSmsSender()
		mailSender = notification.NewLogMailSender()
	} else {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}

		outbox := notification.NewRedisOutbox(redisClient, cfg.Outbox.StreamPrefix, cfg.Outbox.MaxLen)
		smsSender = notification.NewSmsSender(outbox, nil)
		mailSender = notification.NewMailSender(outbox, nil)

		slog.InfoContext(ctx, "notification outbox initialized",
			slog.String("type", "redis_stream"),
			slog.String("sms_stream", outbox.Stream(notification.ChannelSms)),
			slog.String("mail_stream", outbox.Stream(notification.ChannelMail)),
		)
	}

	schedulerOpts := append([]booking.Option{
		booking.WithClosedDay(cfg.Booking.ClosedDay),
		booking.WithSmsSender(smsSender),
		booking.WithMailSender(mailSender),
		booking.WithMetrics(bookingMetrics),
	}, opts...)

	scheduler, err := booking.NewScheduler(cfg.Booking.CapacityPerHour, schedulerOpts...)
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, err
	}

	slog.InfoContext(ctx, "booking scheduler ready",
		slog.Int("capacity_per_hour", cfg.Booking.CapacityPerHour),
		slog.String("closed_day", cfg.Booking.ClosedDay.String()),
	)

	return &App{
		scheduler:   scheduler,
		redisClient: redisClient,
		health:      health.NewChecker(redisClient, Version),
	}, nil
}

func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(cfg.Options())

	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("instrument redis tracing: %w", err)
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("instrument redis metrics: %w", err)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	slog.InfoContext(ctx, "redis connected",
		slog.String("addr", cfg.Addr),
	)

	return client, nil
}

func (a *App) Scheduler() *booking.Scheduler {
	return a.scheduler
}

func (a *App) Ready(ctx context.Context) *health.HealthStatus {
	return a.health.Check(ctx)
}

// Close releases the Redis client and flushes telemetry installed by Bootstrap.
func (a *App) Close() error {
	var errs []error

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			errs = append(errs, err)
		}
	}

	if a.obs != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.obs.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("observability shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
