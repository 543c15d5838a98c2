package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
	sharedConfig "glowtrack/internal/shared/config"
)

func markDoneUseCase(repo *mockRoutineRepo, clock biztime.Clock, mode string, t *testing.T) *MarkSessionDoneUseCase {
	t.Helper()
	return NewMarkSessionDoneUseCase(repo, clock, sharedConfig.RoutineConfig{DeadlineMode: mode}, testLogger(t))
}

func TestMarkSessionDoneWithinWindow(t *testing.T) {
	r := routineWithMonday(1, sessionWith("08:00 AM", routine.StatusPending, 2))
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(8, 30)}, sharedConfig.DeadlineModeAdvisory, t)

	result, err := uc.Execute(context.Background(), 1, "Monday", "08:00 AM")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.OutOfWindow)
	assert.Equal(t, routine.StatusDone, result.Day.Sessions[0].Status)
	assert.Equal(t, 1, repo.saveDaysCalls)
}

func TestMarkSessionDoneAdvisoryOutOfWindow(t *testing.T) {
	r := routineWithMonday(1, sessionWith("08:00 AM", routine.StatusPending, 2))
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(11, 0)}, sharedConfig.DeadlineModeAdvisory, t)

	result, err := uc.Execute(context.Background(), 1, "Monday", "08:00 AM")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.True(t, result.OutOfWindow)
	assert.Equal(t, routine.StatusDone, result.Day.Sessions[0].Status)
}

func TestMarkSessionDoneEnforcedOutOfWindow(t *testing.T) {
	repo := &mockRoutineRepo{}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(11, 0)}, sharedConfig.DeadlineModeEnforced, t)

	_, err := uc.Execute(context.Background(), 1, "Monday", "08:00 AM")
	assert.ErrorIs(t, err, routine.ErrDeadlinePassed)
	assert.Zero(t, repo.saveDaysCalls)
}

func TestMarkSessionDoneAlreadyDoneSkipsSave(t *testing.T) {
	r := routineWithMonday(1, sessionWith("08:00 AM", routine.StatusDone, 2))
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(8, 30)}, sharedConfig.DeadlineModeAdvisory, t)

	result, err := uc.Execute(context.Background(), 1, "Monday", "08:00 AM")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Zero(t, repo.saveDaysCalls)
}

func TestMarkSessionDoneNoSteps(t *testing.T) {
	r := routineWithMonday(1, sessionWith("08:00 AM", routine.StatusPending, 0))
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(8, 30)}, sharedConfig.DeadlineModeAdvisory, t)

	_, err := uc.Execute(context.Background(), 1, "Monday", "08:00 AM")
	assert.ErrorIs(t, err, routine.ErrSessionNotActionable)
	assert.Zero(t, repo.saveDaysCalls)
}

func TestMarkSessionDoneEnforcedRejectsBadTime(t *testing.T) {
	repo := &mockRoutineRepo{}
	uc := markDoneUseCase(repo, biztime.FixedClock{T: mondayAt(8, 30)}, sharedConfig.DeadlineModeEnforced, t)

	// Unparseable times fail closed, so enforced mode rejects before any lookup.
	_, err := uc.Execute(context.Background(), 1, "Monday", "whenever")
	assert.ErrorIs(t, err, routine.ErrDeadlinePassed)
}
