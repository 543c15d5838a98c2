package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/biztime"
)

// UpdateUserStreakUseCase rederives one user's streak from their tracker
// dates and persists it.
type UpdateUserStreakUseCase struct {
	trackerRepo tracker.Repository
	userRepo    user.Repository
	clock       biztime.Clock
}

// NewUpdateUserStreakUseCase creates a new UpdateUserStreakUseCase.
func NewUpdateUserStreakUseCase(
	trackerRepo tracker.Repository,
	userRepo user.Repository,
	clock biztime.Clock,
) *UpdateUserStreakUseCase {
	return &UpdateUserStreakUseCase{
		trackerRepo: trackerRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

// Execute recomputes and stores the streak, returning the new value.
func (uc *UpdateUserStreakUseCase) Execute(ctx context.Context, userID uint) (int, error) {
	dates, err := uc.trackerRepo.ListDatesByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list tracker dates: %w", err)
	}

	streak := tracker.CalculateStreak(dates, biztime.Today(uc.clock))
	if err := uc.userRepo.SetStreak(ctx, userID, streak); err != nil {
		return 0, fmt.Errorf("save streak: %w", err)
	}
	return streak, nil
}

// Current returns the stored streak without recomputing it.
func (uc *UpdateUserStreakUseCase) Current(ctx context.Context, userID uint) (int, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.Streak, nil
}
