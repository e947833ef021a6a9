package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-booking-scheduler/internal/observability/tracing"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=notification

type Publisher interface {
	Publish(ctx context.Context, msg *Message) error
}

const (
	DefaultStreamPrefix = "booking:outbox:"
	DefaultMaxLen       = 10000
)

// RedisOutbox appends messages to one Redis stream per channel. Delivery to
// the carrier is owned by whichever worker consumes the stream.
type RedisOutbox struct {
	client       *redis.Client
	streamPrefix string
	maxLen       int64
}

func NewRedisOutbox(client *redis.Client, streamPrefix string, maxLen int64) *RedisOutbox {
	if streamPrefix == "" {
		streamPrefix = DefaultStreamPrefix
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &RedisOutbox{
		client:       client,
		streamPrefix: streamPrefix,
		maxLen:       maxLen,
	}
}

func (o *RedisOutbox) Stream(channel Channel) string {
	return o.streamPrefix + channel.String()
}

func (o *RedisOutbox) Publish(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	stream := o.Stream(msg.Channel)
	ctx, span := tracing.StartOutboxPublishSpan(ctx, stream)
	defer span.End()

	payload, err := json.Marshal(msg)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	entryID, err := o.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: o.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":      msg.ID,
			"payload": payload,
		},
	}).Result()
	tracing.RecordError(span, err)
	if err != nil {
		return fmt.Errorf("xadd %s: %w", stream, err)
	}

	slog.DebugContext(ctx, "notification queued",
		slog.String("stream", stream),
		slog.String("entry_id", entryID),
		slog.String("message_id", msg.ID),
	)

	return nil
}
