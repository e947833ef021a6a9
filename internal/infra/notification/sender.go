package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
)

// SmsSender queues booking confirmations for SMS delivery.
type SmsSender struct {
	publisher Publisher
	clock     domain.Clock
}

func NewSmsSender(publisher Publisher, clock domain.Clock) *SmsSender {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &SmsSender{publisher: publisher, clock: clock}
}

func (s *SmsSender) Send(ctx context.Context, schedule domain.Schedule) error {
	msg := NewSmsMessage(schedule, s.clock.Now())
	if err := s.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish sms %s: %w", msg.ID, err)
	}
	return nil
}

// MailSender queues booking confirmations for email delivery.
type MailSender struct {
	publisher Publisher
	clock     domain.Clock
}

func NewMailSender(publisher Publisher, clock domain.Clock) *MailSender {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &MailSender{publisher: publisher, clock: clock}
}

func (s *MailSender) SendMail(ctx context.Context, schedule domain.Schedule) error {
	msg := NewMailMessage(schedule, s.clock.Now())
	if err := s.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish mail %s: %w", msg.ID, err)
	}
	return nil
}

type logSmsSender struct{}

// NewLogSmsSender returns a sender that only logs. Used when the outbox is disabled.
func NewLogSmsSender() domain.SmsSender {
	return &logSmsSender{}
}

func (logSmsSender) Send(ctx context.Context, schedule domain.Schedule) error {
	slog.InfoContext(ctx, "sms notification not queued, outbox disabled",
		slog.String("customer", schedule.Customer().Name()),
		slog.Time("reservation_time", schedule.DateTime()),
		slog.Int("headcount", schedule.Headcount()),
	)
	return nil
}

type logMailSender struct{}

func NewLogMailSender() domain.MailSender {
	return &logMailSender{}
}

func (logMailSender) SendMail(ctx context.Context, schedule domain.Schedule) error {
	slog.InfoContext(ctx, "mail notification not queued, outbox disabled",
		slog.String("customer", schedule.Customer().Name()),
		slog.Time("reservation_time", schedule.DateTime()),
		slog.Int("headcount", schedule.Headcount()),
	)
	return nil
}
