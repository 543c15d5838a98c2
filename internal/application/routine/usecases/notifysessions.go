package usecases

import (
	"context"
	"fmt"
	"sync/atomic"

	"glowtrack/internal/application/common"
	"glowtrack/internal/domain/notification"
	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// NotifySessionsJob pushes a reminder for every session scheduled at the
// current minute. It runs once a minute; matching is on the session's
// stored clock string so a session only ever fires once per day.
type NotifySessionsJob struct {
	routineRepo routine.Repository
	dispatcher  notification.Dispatcher
	clock       biztime.Clock
	logger      logger.Interface
	runner      *common.Runner[*routine.Routine]
}

// NewNotifySessionsJob creates a new NotifySessionsJob sweeping in pages
// of batchSize routines.
func NewNotifySessionsJob(
	routineRepo routine.Repository,
	dispatcher notification.Dispatcher,
	clock biztime.Clock,
	batchSize int,
	log logger.Interface,
) *NotifySessionsJob {
	return &NotifySessionsJob{
		routineRepo: routineRepo,
		dispatcher:  dispatcher,
		clock:       clock,
		logger:      log,
		runner:      common.NewRunner[*routine.Routine]("notify_sessions", batchSize, log),
	}
}

// Name returns the job name.
func (j *NotifySessionsJob) Name() string {
	return "notify_sessions"
}

// Execute scans all routines and delivers reminders for sessions whose
// time matches the current minute. Returns the number of notifications
// delivered. Delivery failures are logged per routine and never abort
// the sweep.
func (j *NotifySessionsJob) Execute(ctx context.Context) (int, error) {
	now := j.clock.Now()
	minute := biztime.FormatMinute(now)
	weekday := biztime.WeekdayName(now)

	var delivered int64
	result, err := j.runner.Run(ctx,
		func(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
			return j.routineRepo.ListPage(ctx, offset, limit)
		},
		func(ctx context.Context, r *routine.Routine) error {
			if r.PushToken == "" {
				return nil
			}
			day := r.DayFor(weekday)
			if day == nil {
				return nil
			}
			for i := range day.Sessions {
				s := &day.Sessions[i]
				if s.TimeKey() != minute {
					continue
				}
				body := fmt.Sprintf("You have %d steps in your skincare routine at %s.", len(s.Steps), s.TimeKey())
				ok, err := j.dispatcher.Deliver(ctx, r.PushToken, "Time for skincare", body)
				if err != nil {
					return fmt.Errorf("deliver to user %d: %w", r.UserID, err)
				}
				if ok {
					atomic.AddInt64(&delivered, 1)
				}
			}
			return nil
		},
	)
	if err != nil {
		return int(delivered), err
	}

	if delivered > 0 || result.Failed > 0 {
		j.logger.Infow("session reminders swept",
			"minute", minute,
			"delivered", delivered,
			"failed", result.Failed,
		)
	}
	return int(delivered), nil
}
