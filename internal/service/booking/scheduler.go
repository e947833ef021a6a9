package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/tracing"
)

const (
	outcomeAccepted = "accepted"

	channelSms  = "sms"
	channelMail = "mail"
)

// Scheduler accepts restaurant reservations for a single capacity shared by
// every hour. Accepted schedules are kept in memory for the process lifetime.
type Scheduler struct {
	capacityPerHour int
	closedDay       domain.ClosedDay
	clock           domain.Clock

	mu         sync.Mutex
	schedules  []domain.Schedule
	smsSender  domain.SmsSender
	mailSender domain.MailSender

	metrics *metrics.BookingMetrics
}

func NewScheduler(capacityPerHour int, opts ...Option) (*Scheduler, error) {
	if capacityPerHour <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidCapacity, capacityPerHour)
	}

	s := &Scheduler{
		capacityPerHour: capacityPerHour,
		closedDay:       domain.NoClosedDay(),
		clock:           domain.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Scheduler) SetSmsSender(sender domain.SmsSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smsSender = sender
}

func (s *Scheduler) SetMailSender(sender domain.MailSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mailSender = sender
}

// Now returns the time the closed-day rule is evaluated against.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

func (s *Scheduler) CapacityPerHour() int {
	return s.capacityPerHour
}

func (s *Scheduler) ClosedDay() domain.ClosedDay {
	return s.closedDay
}

// AddSchedule validates the schedule, records it and sends the confirmation
// notifications. A rejected schedule leaves no trace and sends nothing.
// Notification errors are returned after the schedule has been recorded.
func (s *Scheduler) AddSchedule(ctx context.Context, schedule domain.Schedule) error {
	ctx, span := tracing.StartAddScheduleSpan(ctx, schedule.DateTime(), schedule.Headcount())
	defer span.End()

	booked, smsSender, mailSender, err := s.record(schedule)
	if err != nil {
		outcome := "error"
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			outcome = vErr.Kind.String()
		}

		slog.InfoContext(ctx, "schedule rejected",
			slog.String("reason", outcome),
			slog.Time("date_time", schedule.DateTime()),
			slog.Int("headcount", schedule.Headcount()),
			slog.Int("booked_headcount", booked),
			slog.Int("capacity_per_hour", s.capacityPerHour),
		)
		if s.metrics != nil {
			s.metrics.RecordScheduleProcessed(ctx, outcome)
		}
		tracing.RecordAddScheduleResult(span, outcome, booked, err)
		return err
	}

	slog.InfoContext(ctx, "schedule accepted",
		slog.String("slot", domain.SlotKey(schedule.DateTime())),
		slog.Int("headcount", schedule.Headcount()),
		slog.Int("booked_headcount", booked),
		slog.Bool("has_email", schedule.Customer().HasEmail()),
	)
	if s.metrics != nil {
		s.metrics.RecordScheduleProcessed(ctx, outcomeAccepted)
		s.metrics.RecordAcceptedHeadcount(ctx, schedule.Headcount())
	}

	err = s.notify(ctx, schedule, smsSender, mailSender)
	tracing.RecordAddScheduleResult(span, outcomeAccepted, booked, err)
	return err
}

// record runs the three booking gates and appends the schedule when all pass.
// It returns the slot headcount after the call together with the senders
// captured under the lock.
func (s *Scheduler) record(schedule domain.Schedule) (int, domain.SmsSender, domain.MailSender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !schedule.IsOnTheHour() {
		return 0, nil, nil, domain.NewNotOnHourError()
	}

	if now := s.clock.Now(); s.closedDay.IsClosed(now) {
		return 0, nil, nil, domain.NewClosedDayError(now.Weekday())
	}

	booked := s.bookedHeadcountLocked(schedule.DateTime())
	if booked+schedule.Headcount() > s.capacityPerHour {
		return booked, nil, nil, domain.NewOverCapacityError()
	}

	s.schedules = append(s.schedules, schedule)

	return booked + schedule.Headcount(), s.smsSender, s.mailSender, nil
}

func (s *Scheduler) notify(ctx context.Context, schedule domain.Schedule, smsSender domain.SmsSender, mailSender domain.MailSender) error {
	if smsSender == nil {
		slog.WarnContext(ctx, "sms sender not configured, skipping sms",
			slog.String("slot", domain.SlotKey(schedule.DateTime())),
		)
	} else {
		smsCtx, span := tracing.StartNotificationSpan(ctx, channelSms)
		err := smsSender.Send(smsCtx, schedule)
		tracing.RecordError(span, err)
		span.End()
		s.recordNotification(ctx, channelSms, err)
		if err != nil {
			slog.ErrorContext(ctx, "failed to send sms",
				slog.String("slot", domain.SlotKey(schedule.DateTime())),
				slog.String("error", err.Error()),
			)
			return err
		}
	}

	if !schedule.Customer().HasEmail() {
		return nil
	}

	if mailSender == nil {
		slog.WarnContext(ctx, "mail sender not configured, skipping mail",
			slog.String("slot", domain.SlotKey(schedule.DateTime())),
		)
		return nil
	}

	mailCtx, span := tracing.StartNotificationSpan(ctx, channelMail)
	err := mailSender.SendMail(mailCtx, schedule)
	tracing.RecordError(span, err)
	span.End()
	s.recordNotification(ctx, channelMail, err)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send mail",
			slog.String("slot", domain.SlotKey(schedule.DateTime())),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

func (s *Scheduler) recordNotification(ctx context.Context, channel string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failed"
	}
	s.metrics.RecordNotification(ctx, channel, outcome)
}

// HasSchedule reports whether an equal schedule has been accepted.
func (s *Scheduler) HasSchedule(schedule domain.Schedule) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.schedules {
		if existing.Equal(schedule) {
			return true
		}
	}
	return false
}

// BookedHeadcount returns the headcount already accepted at exactly at.
func (s *Scheduler) BookedHeadcount(at time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookedHeadcountLocked(at)
}

func (s *Scheduler) bookedHeadcountLocked(at time.Time) int {
	total := 0
	for _, existing := range s.schedules {
		if existing.DateTime().Equal(at) {
			total += existing.Headcount()
		}
	}
	return total
}

// Schedules returns a copy of the accepted schedules in acceptance order.
func (s *Scheduler) Schedules() []domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}
