package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	bookingMeterName = "booking.scheduler"
)

type BookingMetrics struct {
	bookingsProcessed metric.Int64Counter
	notificationsSent metric.Int64Counter
	acceptedHeadcount metric.Int64Histogram
}

func NewBookingMetrics() (*BookingMetrics, error) {
	return NewBookingMetricsWithProvider(otel.GetMeterProvider())
}

func NewBookingMetricsWithProvider(provider metric.MeterProvider) (*BookingMetrics, error) {
	meter := provider.Meter(bookingMeterName)

	bookingsProcessed, err := meter.Int64Counter(
		"booking_schedules_total",
		metric.WithDescription("Total number of schedules submitted, by outcome"),
		metric.WithUnit("{schedule}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsSent, err := meter.Int64Counter(
		"booking_notifications_total",
		metric.WithDescription("Total number of booking notifications, by channel and outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	acceptedHeadcount, err := meter.Int64Histogram(
		"booking_accepted_headcount",
		metric.WithDescription("Party size of accepted schedules"),
		metric.WithUnit("{person}"),
		metric.WithExplicitBucketBoundaries(1, 2, 4, 6, 8, 10, 15, 20),
	)
	if err != nil {
		return nil, err
	}

	return &BookingMetrics{
		bookingsProcessed: bookingsProcessed,
		notificationsSent: notificationsSent,
		acceptedHeadcount: acceptedHeadcount,
	}, nil
}

// RecordScheduleProcessed counts one AddSchedule call. outcome is "accepted"
// or the violation kind that rejected it.
func (m *BookingMetrics) RecordScheduleProcessed(ctx context.Context, outcome string) {
	m.bookingsProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *BookingMetrics) RecordNotification(ctx context.Context, channel, outcome string) {
	m.notificationsSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("outcome", outcome),
	))
}

func (m *BookingMetrics) RecordAcceptedHeadcount(ctx context.Context, headcount int) {
	m.acceptedHeadcount.Record(ctx, int64(headcount))
}
