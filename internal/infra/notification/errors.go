package notification

import "errors"

var (
	ErrInvalidMessage   = errors.New("invalid notification message")
	ErrMissingRecipient = errors.New("notification recipient is missing")
)
