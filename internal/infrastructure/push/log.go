package push

import (
	"context"

	"glowtrack/internal/domain/notification"
	"glowtrack/internal/shared/logger"
)

// LogDispatcher writes notifications to the log instead of delivering
// them. Used when no push provider is configured.
type LogDispatcher struct {
	logger logger.Interface
}

// NewLogDispatcher creates a new LogDispatcher.
func NewLogDispatcher(log logger.Interface) *LogDispatcher {
	return &LogDispatcher{logger: log}
}

var _ notification.Dispatcher = (*LogDispatcher)(nil)

// Deliver logs the message and reports it as delivered.
func (d *LogDispatcher) Deliver(ctx context.Context, token, title, body string) (bool, error) {
	d.logger.Infow("push notification (log only)",
		"token", token,
		"title", title,
		"body", body,
	)
	return true, nil
}
