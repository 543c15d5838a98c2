package tracker

import (
	"context"
	"time"
)

// RecordedEvent is emitted when a user logs a skin check for a day.
type RecordedEvent struct {
	TrackerID  uint      `json:"tracker_id"`
	UserID     uint      `json:"user_id"`
	Date       string    `json:"date"`
	FirstOfDay bool      `json:"first_of_day"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher publishes tracker domain events to interested consumers.
type Publisher interface {
	PublishRecorded(ctx context.Context, event RecordedEvent) error
}
