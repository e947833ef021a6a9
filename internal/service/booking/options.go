package booking

import (
	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/metrics"
)

type Option func(*Scheduler)

// WithClosedDay sets the weekday on which no booking is accepted.
func WithClosedDay(closedDay domain.ClosedDay) Option {
	return func(s *Scheduler) {
		s.closedDay = closedDay
	}
}

// WithClock replaces the system clock used for the closed-day check.
func WithClock(clock domain.Clock) Option {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithSmsSender(sender domain.SmsSender) Option {
	return func(s *Scheduler) {
		s.smsSender = sender
	}
}

func WithMailSender(sender domain.MailSender) Option {
	return func(s *Scheduler) {
		s.mailSender = sender
	}
}

func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}
