package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

// NewLogger builds the JSON process logger. Records logged with a context
// carrying a span get trace_id and span_id attributes.
func NewLogger(w io.Writer, level slog.Level, info ServiceInfo, env Environment) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: env != EnvProd,
	})

	return slog.New(&traceHandler{Handler: handler}).With(
		slog.Group("service",
			slog.String("name", info.Name),
			slog.String("version", info.Version),
			slog.String("revision", info.Revision),
		),
		slog.String("env", string(env)),
	)
}

type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(traceAttrs(ctx)...)
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

func traceAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []slog.Attr{
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	}
}
