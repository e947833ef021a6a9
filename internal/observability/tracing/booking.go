package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const bookingTracerName = "github.com/KasumiMercury/primind-booking-scheduler/internal/service/booking"

func BookingTracer() trace.Tracer {
	return otel.Tracer(bookingTracerName)
}

func StartAddScheduleSpan(ctx context.Context, dateTime time.Time, headcount int) (context.Context, trace.Span) {
	return BookingTracer().Start(ctx, "booking.add_schedule",
		trace.WithAttributes(
			attribute.String("schedule.date_time", dateTime.Format(time.RFC3339)),
			attribute.Int("schedule.headcount", headcount),
		),
	)
}

func StartNotificationSpan(ctx context.Context, channel string) (context.Context, trace.Span) {
	return BookingTracer().Start(ctx, "booking.notify."+channel,
		trace.WithAttributes(
			attribute.String("notification.channel", channel),
		),
		trace.WithSpanKind(trace.SpanKindProducer),
	)
}

func StartOutboxPublishSpan(ctx context.Context, stream string) (context.Context, trace.Span) {
	return BookingTracer().Start(ctx, "booking.outbox.publish",
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", "xadd"),
			attribute.String("db.key", stream),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// RecordAddScheduleResult tags the span with the outcome. outcome is
// "accepted" or the violation kind.
func RecordAddScheduleResult(span trace.Span, outcome string, bookedHeadcount int, err error) {
	span.SetAttributes(
		attribute.String("booking.outcome", outcome),
		attribute.Int("booking.slot_headcount", bookedHeadcount),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
