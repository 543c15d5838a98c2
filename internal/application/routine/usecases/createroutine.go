package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/logger"
)

// CreateRoutineUseCase provisions the weekly routine for a new user:
// seven empty days, one per weekday, created exactly once at onboarding.
type CreateRoutineUseCase struct {
	routineRepo routine.Repository
	logger      logger.Interface
}

// NewCreateRoutineUseCase creates a new CreateRoutineUseCase.
func NewCreateRoutineUseCase(routineRepo routine.Repository, log logger.Interface) *CreateRoutineUseCase {
	return &CreateRoutineUseCase{
		routineRepo: routineRepo,
		logger:      log,
	}
}

// Execute creates the onboarding routine. If the user already has one, the
// existing routine is returned unchanged.
func (uc *CreateRoutineUseCase) Execute(ctx context.Context, userID uint) (*routine.Routine, error) {
	existing, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}

	r := routine.NewRoutine(userID)
	if err := uc.routineRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	uc.logger.Infow("routine created for new user", "user_id", userID, "routine_id", r.ID)
	return r, nil
}
