package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/shared/goroutine"
	"glowtrack/internal/shared/logger"
)

// TrackerEventHandler is a callback for handling tracker recorded events
type TrackerEventHandler func(ctx context.Context, event tracker.RecordedEvent)

const trackerRecordedChannel = "glowtrack:tracker:recorded"

// RedisTrackerEventBus publishes and consumes tracker events over Redis
// Pub/Sub so other instances and workers can react to skin check
// submissions without polling the database.
type RedisTrackerEventBus struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisTrackerEventBus creates a new Redis-based tracker event bus
func NewRedisTrackerEventBus(client *redis.Client, logger logger.Interface) *RedisTrackerEventBus {
	return &RedisTrackerEventBus{
		client: client,
		logger: logger,
	}
}

// PublishRecorded publishes a tracker recorded event
func (b *RedisTrackerEventBus) PublishRecorded(ctx context.Context, event tracker.RecordedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, trackerRecordedChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish tracker recorded event",
			"user_id", event.UserID,
			"date", event.Date,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("tracker recorded event published",
		"user_id", event.UserID,
		"date", event.Date,
		"first_of_day", event.FirstOfDay,
	)
	return nil
}

// Subscribe consumes tracker recorded events and calls the handler for
// each one until the context is cancelled.
func (b *RedisTrackerEventBus) Subscribe(ctx context.Context, handler TrackerEventHandler) error {
	pubsub := b.client.Subscribe(ctx, trackerRecordedChannel)
	defer pubsub.Close()

	// Wait for subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to tracker recorded events",
		"channel", trackerRecordedChannel,
	)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("tracker event subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("tracker event channel closed")
				return nil
			}

			var event tracker.RecordedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal tracker event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			goroutine.SafeGo(b.logger, "tracker-event-handler", func() {
				handler(ctx, event)
			})
		}
	}
}
