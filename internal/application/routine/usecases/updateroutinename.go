package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
)

// UpdateRoutineNameUseCase renames a user's routine.
type UpdateRoutineNameUseCase struct {
	routineRepo routine.Repository
}

// NewUpdateRoutineNameUseCase creates a new UpdateRoutineNameUseCase.
func NewUpdateRoutineNameUseCase(routineRepo routine.Repository) *UpdateRoutineNameUseCase {
	return &UpdateRoutineNameUseCase{routineRepo: routineRepo}
}

// Execute sets the display name.
func (uc *UpdateRoutineNameUseCase) Execute(ctx context.Context, userID uint, name string) error {
	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	r.Name = name
	if err := uc.routineRepo.Save(ctx, r); err != nil {
		return fmt.Errorf("save routine name: %w", err)
	}
	return nil
}
