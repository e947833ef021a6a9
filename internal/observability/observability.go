package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/logging"
)

const otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

type Config struct {
	ServiceInfo  logging.ServiceInfo
	Environment  logging.Environment
	LogLevel     slog.Level
	SamplingRate float64
}

// Resources owns the process-wide logger and OpenTelemetry providers.
type Resources struct {
	logger         *slog.Logger
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// Init installs global tracer and meter providers. Spans and metrics are
// exported over OTLP/HTTP only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceInfo.Name),
		attribute.String("service.version", cfg.ServiceInfo.Version),
		attribute.String("deployment.environment", string(cfg.Environment)),
	)

	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	}
	metricOpts := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}

	if os.Getenv(otlpEndpointEnv) != "" {
		traceExporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(traceExporter))

		metricExporter, err := otlpmetrichttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("create metric exporter: %w", err)
		}
		metricOpts = append(metricOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	}

	tp := sdktrace.NewTracerProvider(traceOpts...)
	mp := sdkmetric.NewMeterProvider(metricOpts...)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return &Resources{
		logger:         logging.NewLogger(os.Stdout, cfg.LogLevel, cfg.ServiceInfo, cfg.Environment),
		tracerProvider: tp,
		meterProvider:  mp,
	}, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

// Shutdown flushes pending spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.tracerProvider.Shutdown(ctx),
		r.meterProvider.Shutdown(ctx),
	)
}
