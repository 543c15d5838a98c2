package usecases

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"glowtrack/internal/application/common"
	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// MarkNotDoneJob sweeps today's sessions and expires the ones the user
// missed. A session is missed when it is still pending more than an hour
// after its scheduled time. Sessions with no steps are forced to not_done
// regardless of their current status since there is nothing to complete.
type MarkNotDoneJob struct {
	routineRepo routine.Repository
	clock       biztime.Clock
	logger      logger.Interface
	runner      *common.Runner[*routine.Routine]
}

// NewMarkNotDoneJob creates a new MarkNotDoneJob sweeping in pages of
// batchSize routines.
func NewMarkNotDoneJob(routineRepo routine.Repository, clock biztime.Clock, batchSize int, log logger.Interface) *MarkNotDoneJob {
	return &MarkNotDoneJob{
		routineRepo: routineRepo,
		clock:       clock,
		logger:      log,
		runner:      common.NewRunner[*routine.Routine]("mark_not_done", batchSize, log),
	}
}

// Name returns the job name.
func (j *MarkNotDoneJob) Name() string {
	return "mark_not_done"
}

// Execute expires missed sessions across all routines and returns the
// number of routines updated.
func (j *MarkNotDoneJob) Execute(ctx context.Context) (int, error) {
	now := j.clock.Now()
	weekday := biztime.WeekdayName(now)

	var updated int64
	result, err := j.runner.Run(ctx,
		func(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
			return j.routineRepo.ListPage(ctx, offset, limit)
		},
		func(ctx context.Context, r *routine.Routine) error {
			day := r.DayFor(weekday)
			if day == nil {
				return nil
			}
			if !j.expireMissed(day, r.UserID, now) {
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

	if updated > 0 {
		j.logger.Infow("missed sessions expired",
			"weekday", weekday,
			"routines_updated", updated,
			"failed", result.Failed,
		)
	}
	return int(updated), nil
}

// expireMissed mutates day in place and reports whether anything changed.
func (j *MarkNotDoneJob) expireMissed(day *routine.Day, userID uint, now time.Time) bool {
	changed := false
	for i := range day.Sessions {
		s := &day.Sessions[i]

		if !s.Actionable() {
			if s.Status != routine.StatusNotDone {
				s.Status = routine.StatusNotDone
				changed = true
			}
			continue
		}

		if s.Status != routine.StatusPending {
			continue
		}

		at, err := biztime.SessionTimeOn(now, s.Time)
		if err != nil {
			j.logger.Warnw("session has unparseable time, skipping",
				"user_id", userID,
				"session_time", s.Time,
				"error", err,
			)
			continue
		}
		if now.After(at.Add(routine.DeadlineWindow)) {
			s.Status = routine.StatusNotDone
			changed = true
		}
	}
	return changed
}
