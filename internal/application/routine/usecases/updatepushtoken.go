package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/logger"
)

// UpdatePushTokenUseCase stores a new notification destination token on
// both the routine (read by the notification job) and the user record.
type UpdatePushTokenUseCase struct {
	routineRepo routine.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

// NewUpdatePushTokenUseCase creates a new UpdatePushTokenUseCase.
func NewUpdatePushTokenUseCase(
	routineRepo routine.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *UpdatePushTokenUseCase {
	return &UpdatePushTokenUseCase{
		routineRepo: routineRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// Execute updates the push token.
func (uc *UpdatePushTokenUseCase) Execute(ctx context.Context, userID uint, token string) error {
	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	r.PushToken = token
	if err := uc.routineRepo.Save(ctx, r); err != nil {
		return fmt.Errorf("save routine push token: %w", err)
	}

	if err := uc.userRepo.SetPushToken(ctx, userID, token); err != nil {
		return fmt.Errorf("save user push token: %w", err)
	}

	uc.logger.Debugw("push token updated", "user_id", userID)
	return nil
}
