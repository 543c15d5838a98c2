package usecases

import (
	"context"

	"glowtrack/internal/domain/routine"
)

// GetRoutineUseCase fetches a user's full weekly routine.
type GetRoutineUseCase struct {
	routineRepo routine.Repository
}

// NewGetRoutineUseCase creates a new GetRoutineUseCase.
func NewGetRoutineUseCase(routineRepo routine.Repository) *GetRoutineUseCase {
	return &GetRoutineUseCase{routineRepo: routineRepo}
}

// Execute returns the routine, or a not-found error.
func (uc *GetRoutineUseCase) Execute(ctx context.Context, userID uint) (*routine.Routine, error) {
	return uc.routineRepo.FindByUserID(ctx, userID)
}
