package usecases

import (
	"context"
	"fmt"
	"sync/atomic"

	"glowtrack/internal/application/common"
	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/logger"
)

// ResetSessionsJob runs at midnight and returns every session on every
// routine to pending, giving each day a clean slate.
type ResetSessionsJob struct {
	routineRepo routine.Repository
	logger      logger.Interface
	runner      *common.Runner[*routine.Routine]
}

// NewResetSessionsJob creates a new ResetSessionsJob sweeping in pages of
// batchSize routines.
func NewResetSessionsJob(routineRepo routine.Repository, batchSize int, log logger.Interface) *ResetSessionsJob {
	return &ResetSessionsJob{
		routineRepo: routineRepo,
		logger:      log,
		runner:      common.NewRunner[*routine.Routine]("reset_sessions", batchSize, log),
	}
}

// Name returns the job name.
func (j *ResetSessionsJob) Name() string {
	return "reset_sessions"
}

// Execute resets all sessions and returns the number of routines updated.
// Routines already fully pending are left untouched.
func (j *ResetSessionsJob) Execute(ctx context.Context) (int, error) {
	var updated int64
	result, err := j.runner.Run(ctx,
		func(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
			return j.routineRepo.ListPage(ctx, offset, limit)
		},
		func(ctx context.Context, r *routine.Routine) error {
			if !r.ResetAllSessions() {
				return nil
			}
			if err := j.routineRepo.SaveDays(ctx, r); err != nil {
				return fmt.Errorf("save routine for user %d: %w", r.UserID, err)
			}
			atomic.AddInt64(&updated, 1)
			return nil
		},
	)
	if err != nil {
		return int(updated), err
	}

	j.logger.Infow("daily session reset finished",
		"routines_updated", updated,
		"failed", result.Failed,
	)
	return int(updated), nil
}
