package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
	sharedConfig "glowtrack/internal/shared/config"
	"glowtrack/internal/shared/logger"
)

// MarkSessionDoneResult reports the outcome of a mark-done attempt.
// OutOfWindow is set whenever the attempt fell outside the deadline
// window, including in advisory mode where the transition still happened.
type MarkSessionDoneResult struct {
	Day         *routine.Day
	Changed     bool
	OutOfWindow bool
}

// MarkSessionDoneUseCase transitions a single session to done. The
// deadline window check and the state transition are decoupled: enforced
// mode rejects out-of-window attempts, advisory mode logs and flags them
// but lets the transition proceed.
type MarkSessionDoneUseCase struct {
	routineRepo routine.Repository
	clock       biztime.Clock
	cfg         sharedConfig.RoutineConfig
	logger      logger.Interface
}

// NewMarkSessionDoneUseCase creates a new MarkSessionDoneUseCase.
func NewMarkSessionDoneUseCase(
	routineRepo routine.Repository,
	clock biztime.Clock,
	cfg sharedConfig.RoutineConfig,
	log logger.Interface,
) *MarkSessionDoneUseCase {
	return &MarkSessionDoneUseCase{
		routineRepo: routineRepo,
		clock:       clock,
		cfg:         cfg,
		logger:      log,
	}
}

// Execute marks the session at (weekday, timeStr) done. Idempotent:
// repeating the call on an already-done session changes nothing.
func (uc *MarkSessionDoneUseCase) Execute(ctx context.Context, userID uint, weekday, timeStr string) (*MarkSessionDoneResult, error) {
	withinWindow := routine.WithinDeadline(timeStr, uc.clock.Now())
	if !withinWindow && uc.cfg.Enforced() {
		return nil, routine.ErrDeadlinePassed
	}

	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, changed, err := r.MarkSessionDone(weekday, timeStr)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := uc.routineRepo.SaveDays(ctx, r); err != nil {
			return nil, fmt.Errorf("save session completion: %w", err)
		}
	}

	if !withinWindow {
		uc.logger.Warnw("session marked done outside deadline window",
			"user_id", userID,
			"weekday", weekday,
			"time", timeStr,
		)
	}

	return &MarkSessionDoneResult{
		Day:         day,
		Changed:     changed,
		OutOfWindow: !withinWindow,
	}, nil
}
