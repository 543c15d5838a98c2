// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2. All cron
// expressions evaluate in the business timezone, so "midnight" means
// midnight where the users are, not server midnight.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterMinuteJobs registers the per-minute sweeps:
// - Session reminders fire at second 0, aligned with the minute sessions
//   are scheduled on so a reminder is never a minute late.
// - Missed-session expiry runs at second 10, after the reminder sweep has
//   read the page, so a session is never expired before its reminder.
func (m *SchedulerManager) RegisterMinuteJobs(notifyJob, markNotDoneJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 * * * * *", true),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
			defer cancel()
			m.runJob(ctx, "notify-sessions", notifyJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("routine", "notify"),
		gocron.WithName("notify-sessions"),
	)
	if err != nil {
		return err
	}

	_, err = m.scheduler.NewJob(
		gocron.CronJob("10 * * * * *", true),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
			defer cancel()
			m.runJob(ctx, "mark-not-done", markNotDoneJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("routine", "expiry"),
		gocron.WithName("mark-not-done"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered minute jobs", "jobs", []string{"notify-sessions", "mark-not-done"})
	return nil
}

// RegisterMidnightJobs registers the two daily rollover jobs: reset all
// sessions to pending, and recompute every streak. They are independent;
// streaks read tracker dates, never session state, so neither job waits
// on the other.
func (m *SchedulerManager) RegisterMidnightJobs(resetJob, streakJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 0 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			m.runJob(ctx, "reset-sessions", resetJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("routine", "rollover"),
		gocron.WithName("reset-sessions"),
	)
	if err != nil {
		return err
	}

	_, err = m.scheduler.NewJob(
		gocron.CronJob("0 0 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			m.runJob(ctx, "update-all-streaks", streakJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("tracker", "rollover"),
		gocron.WithName("update-all-streaks"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered midnight jobs", "jobs", []string{"reset-sessions", "update-all-streaks"})
	return nil
}

func (m *SchedulerManager) runJob(ctx context.Context, name string, job BatchJob) {
	startTime := time.Now()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"count", count,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job completed",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
