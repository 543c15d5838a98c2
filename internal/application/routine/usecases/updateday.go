// Package usecases implements the routine application operations. Every
// state transition here goes through the domain session state machine,
// which is the same code the scheduled batch jobs run.
package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// UpdateDayUseCase handles the bulk session upsert for one weekday.
type UpdateDayUseCase struct {
	routineRepo routine.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

// NewUpdateDayUseCase creates a new UpdateDayUseCase.
func NewUpdateDayUseCase(
	routineRepo routine.Repository,
	clock biztime.Clock,
	log logger.Interface,
) *UpdateDayUseCase {
	return &UpdateDayUseCase{
		routineRepo: routineRepo,
		clock:       clock,
		logger:      log,
	}
}

// Execute merges the incoming sessions into the user's day under the
// status precedence rules, re-sorts by parsed time, and persists the day.
func (uc *UpdateDayUseCase) Execute(ctx context.Context, userID uint, weekday string, sessions []routine.Session) (*routine.Day, error) {
	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := r.DayFor(weekday)
	if day == nil {
		return nil, routine.ErrDayNotFound
	}

	day.ApplyUpdate(sessions, uc.clock.Now())

	if err := uc.routineRepo.SaveDays(ctx, r); err != nil {
		return nil, fmt.Errorf("save day update: %w", err)
	}

	uc.logger.Debugw("day updated",
		"user_id", userID,
		"weekday", day.Weekday,
		"sessions", len(day.Sessions),
	)
	return day, nil
}
