package domain

import "context"

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=domain

// SmsSender delivers the booking confirmation text message.
type SmsSender interface {
	Send(ctx context.Context, schedule Schedule) error
}

// MailSender delivers the booking confirmation email.
type MailSender interface {
	SendMail(ctx context.Context, schedule Schedule) error
}
