package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/logger"
)

// PatchRoutineInput carries optional routine fields. Nil means unchanged.
type PatchRoutineInput struct {
	Name      *string
	PushToken *string
}

// PatchRoutineUseCase applies a partial update to a user's routine in one
// load-save cycle.
type PatchRoutineUseCase struct {
	routineRepo routine.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

// NewPatchRoutineUseCase creates a new PatchRoutineUseCase.
func NewPatchRoutineUseCase(
	routineRepo routine.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *PatchRoutineUseCase {
	return &PatchRoutineUseCase{
		routineRepo: routineRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// Execute applies the set fields and returns the updated routine.
func (uc *PatchRoutineUseCase) Execute(ctx context.Context, userID uint, input PatchRoutineInput) (*routine.Routine, error) {
	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name == nil && input.PushToken == nil {
		return r, nil
	}

	if input.Name != nil {
		r.Name = *input.Name
	}
	if input.PushToken != nil {
		r.PushToken = *input.PushToken
	}
	if err := uc.routineRepo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("save routine: %w", err)
	}

	// The user record carries a copy of the token for non-routine sends.
	if input.PushToken != nil {
		if err := uc.userRepo.SetPushToken(ctx, userID, *input.PushToken); err != nil {
			return nil, fmt.Errorf("save user push token: %w", err)
		}
	}

	uc.logger.Debugw("routine patched",
		"user_id", userID,
		"name_changed", input.Name != nil,
		"push_token_changed", input.PushToken != nil,
	)
	return r, nil
}
