package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/domain"
)

type Channel string

const (
	ChannelSms  Channel = "sms"
	ChannelMail Channel = "mail"
)

func (c Channel) String() string {
	return string(c)
}

const reservationTimeLayout = "2006-01-02 15:04"

// Message is the outbox record a delivery worker turns into an SMS or email.
//
// JSON schema:
//
//	{
//	  "id":               "550e8400-e29b-41d4-a716-446655440000",
//	  "channel":          "sms",
//	  "to":               "010-1234-5678",
//	  "body":             "...",
//	  "reservation_time": "2024-07-20T11:00:00Z",
//	  "headcount":        6,
//	  "customer_name":    "jwh",
//	  "created_at":       "2024-07-19T09:12:00Z"
//	}
type Message struct {
	ID              string    `json:"id"`
	Channel         Channel   `json:"channel"`
	To              string    `json:"to"`
	Subject         string    `json:"subject,omitempty"`
	Body            string    `json:"body"`
	ReservationTime time.Time `json:"reservation_time"`
	Headcount       int       `json:"headcount"`
	CustomerName    string    `json:"customer_name"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewSmsMessage(schedule domain.Schedule, now time.Time) *Message {
	customer := schedule.Customer()
	return &Message{
		ID:              uuid.NewString(),
		Channel:         ChannelSms,
		To:              customer.Phone(),
		Body:            confirmationText(schedule),
		ReservationTime: schedule.DateTime(),
		Headcount:       schedule.Headcount(),
		CustomerName:    customer.Name(),
		CreatedAt:       now.UTC(),
	}
}

func NewMailMessage(schedule domain.Schedule, now time.Time) *Message {
	customer := schedule.Customer()
	return &Message{
		ID:              uuid.NewString(),
		Channel:         ChannelMail,
		To:              customer.Email(),
		Subject:         fmt.Sprintf("Your reservation on %s", schedule.DateTime().Format(reservationTimeLayout)),
		Body:            confirmationText(schedule),
		ReservationTime: schedule.DateTime(),
		Headcount:       schedule.Headcount(),
		CustomerName:    customer.Name(),
		CreatedAt:       now.UTC(),
	}
}

func (m *Message) Validate() error {
	if m == nil || m.ID == "" {
		return ErrInvalidMessage
	}
	if m.Channel != ChannelSms && m.Channel != ChannelMail {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidMessage, m.Channel)
	}
	if m.To == "" {
		return ErrMissingRecipient
	}
	return nil
}

func confirmationText(schedule domain.Schedule) string {
	return fmt.Sprintf("%s, your table for %d is booked for %s.",
		schedule.Customer().Name(),
		schedule.Headcount(),
		schedule.DateTime().Format(reservationTimeLayout),
	)
}
