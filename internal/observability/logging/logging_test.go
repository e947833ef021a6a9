package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return record
}

func TestNewLogger_ServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, ServiceInfo{Name: "booking", Version: "1.2.3"}, EnvProd)

	logger.Info("schedule accepted", slog.Int("headcount", 6))

	record := decodeLine(t, &buf)
	service, ok := record["service"].(map[string]any)
	if !ok {
		t.Fatalf("service group missing: %v", record)
	}
	if service["name"] != "booking" || service["version"] != "1.2.3" {
		t.Errorf("service = %v", service)
	}
	if record["env"] != "prod" {
		t.Errorf("env = %v, want prod", record["env"])
	}
	if _, ok := record["trace_id"]; ok {
		t.Error("trace_id should be absent without a span")
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, ServiceInfo{Name: "booking"}, EnvDev)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %s", buf.String())
	}
}

func TestNewLogger_TraceCorrelation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "booking.add_schedule")
	defer span.End()

	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, ServiceInfo{Name: "booking"}, EnvDev)
	logger.InfoContext(ctx, "schedule accepted")

	record := decodeLine(t, &buf)
	if record["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("trace_id = %v, want %s", record["trace_id"], span.SpanContext().TraceID())
	}
	if record["span_id"] != span.SpanContext().SpanID().String() {
		t.Errorf("span_id = %v, want %s", record["span_id"], span.SpanContext().SpanID())
	}
}
