package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/biztime"
)

func TestUpdateUserStreakRecomputesAndStores(t *testing.T) {
	clock := bizClock(2025, time.March, 10, 10, 0)
	today := biztime.Today(clock)

	trackerRepo := &mockTrackerRepo{
		listDatesFn: func(ctx context.Context, userID uint) ([]biztime.Date, error) {
			return []biztime.Date{today.AddDays(-2), today.AddDays(-1), today}, nil
		},
	}
	userRepo := &mockUserRepo{}
	uc := NewUpdateUserStreakUseCase(trackerRepo, userRepo, clock)

	streak, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
	assert.Equal(t, 3, userRepo.streaks[3])
}

func TestUpdateUserStreakNoRecords(t *testing.T) {
	clock := bizClock(2025, time.March, 10, 10, 0)
	trackerRepo := &mockTrackerRepo{}
	userRepo := &mockUserRepo{}
	uc := NewUpdateUserStreakUseCase(trackerRepo, userRepo, clock)

	streak, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, streak)
	assert.Equal(t, 0, userRepo.streaks[3])
}

func TestUpdateUserStreakListFailure(t *testing.T) {
	clock := bizClock(2025, time.March, 10, 10, 0)
	trackerRepo := &mockTrackerRepo{
		listDatesFn: func(ctx context.Context, userID uint) ([]biztime.Date, error) {
			return nil, errors.New("db gone")
		},
	}
	userRepo := &mockUserRepo{}
	uc := NewUpdateUserStreakUseCase(trackerRepo, userRepo, clock)

	_, err := uc.Execute(context.Background(), 3)
	require.Error(t, err)
	assert.Empty(t, userRepo.streaks)
}

func TestCurrentReadsStoredStreak(t *testing.T) {
	clock := bizClock(2025, time.March, 10, 10, 0)
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return &user.User{ID: id, Streak: 9}, nil
		},
	}
	uc := NewUpdateUserStreakUseCase(&mockTrackerRepo{}, userRepo, clock)

	streak, err := uc.Current(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 9, streak)
}
