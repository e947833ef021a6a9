package config

import (
	"os"
	"strconv"
)

const (
	outboxDisabledEnv     = "NOTIFICATION_OUTBOX_DISABLED"
	outboxStreamPrefixEnv = "NOTIFICATION_OUTBOX_STREAM_PREFIX"
	outboxMaxLenEnv       = "NOTIFICATION_OUTBOX_MAX_LEN"

	defaultOutboxStreamPrefix = "booking:outbox:"
	defaultOutboxMaxLen       = 10000
)

type OutboxConfig struct {
	Disabled     bool
	StreamPrefix string
	MaxLen       int64
}

func LoadOutboxConfig() *OutboxConfig {
	prefix := os.Getenv(outboxStreamPrefixEnv)
	if prefix == "" {
		prefix = defaultOutboxStreamPrefix
	}

	maxLen := int64(defaultOutboxMaxLen)
	if v := os.Getenv(outboxMaxLenEnv); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxLen = parsed
		}
	}

	return &OutboxConfig{
		Disabled:     os.Getenv(outboxDisabledEnv) == "true",
		StreamPrefix: prefix,
		MaxLen:       maxLen,
	}
}
