package usecases

import (
	"context"
	"fmt"
	"sync/atomic"

	"glowtrack/internal/application/common"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/logger"
)

// UpdateAllStreaksJob recomputes every user's streak. It runs at midnight
// so streaks reflect the day that just ended.
type UpdateAllStreaksJob struct {
	userRepo     user.Repository
	streakUpdate *UpdateUserStreakUseCase
	logger       logger.Interface
	runner       *common.Runner[*user.User]
}

// NewUpdateAllStreaksJob creates a new UpdateAllStreaksJob sweeping in
// pages of batchSize users.
func NewUpdateAllStreaksJob(
	userRepo user.Repository,
	streakUpdate *UpdateUserStreakUseCase,
	batchSize int,
	log logger.Interface,
) *UpdateAllStreaksJob {
	return &UpdateAllStreaksJob{
		userRepo:     userRepo,
		streakUpdate: streakUpdate,
		logger:       log,
		runner:       common.NewRunner[*user.User]("update_all_streaks", batchSize, log),
	}
}

// Name returns the job name.
func (j *UpdateAllStreaksJob) Name() string {
	return "update_all_streaks"
}

// Execute recomputes all streaks and returns the number of users processed.
// A failed user is logged and skipped; the sweep keeps going.
func (j *UpdateAllStreaksJob) Execute(ctx context.Context) (int, error) {
	var processed int64
	result, err := j.runner.Run(ctx,
		func(ctx context.Context, offset, limit int) ([]*user.User, error) {
			return j.userRepo.ListPage(ctx, offset, limit)
		},
		func(ctx context.Context, u *user.User) error {
			if _, err := j.streakUpdate.Execute(ctx, u.ID); err != nil {
				return fmt.Errorf("recompute streak for user %d: %w", u.ID, err)
			}
			atomic.AddInt64(&processed, 1)
			return nil
		},
	)
	if err != nil {
		return int(processed), err
	}

	j.logger.Infow("streak recompute finished",
		"users_processed", processed,
		"failed", result.Failed,
	)
	return int(processed), nil
}
