package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/notification"
	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/logger"
)

// StreakNotifier consumes tracker recorded events and pushes a streak
// update when a user extends their run. Only the first record of a day
// moves the streak, so repeat submissions are ignored.
type StreakNotifier struct {
	userRepo   user.Repository
	dispatcher notification.Dispatcher
	logger     logger.Interface
}

// NewStreakNotifier creates a new StreakNotifier.
func NewStreakNotifier(
	userRepo user.Repository,
	dispatcher notification.Dispatcher,
	log logger.Interface,
) *StreakNotifier {
	return &StreakNotifier{
		userRepo:   userRepo,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// Handle reacts to one recorded event. Errors are logged, never returned;
// a missed streak push must not affect anything else.
func (n *StreakNotifier) Handle(ctx context.Context, event tracker.RecordedEvent) {
	if !event.FirstOfDay {
		return
	}

	u, err := n.userRepo.FindByID(ctx, event.UserID)
	if err != nil {
		n.logger.Warnw("failed to load user for streak push",
			"user_id", event.UserID,
			"error", err,
		)
		return
	}
	if u.PushToken == "" || u.Streak < 2 {
		return
	}

	body := fmt.Sprintf("You're on a %d-day streak. Keep it up!", u.Streak)
	delivered, err := n.dispatcher.Deliver(ctx, u.PushToken, "Streak extended", body)
	if err != nil {
		n.logger.Warnw("streak push failed",
			"user_id", event.UserID,
			"streak", u.Streak,
			"error", err,
		)
		return
	}

	n.logger.Debugw("streak push sent",
		"user_id", event.UserID,
		"streak", u.Streak,
		"delivered", delivered,
	)
}
