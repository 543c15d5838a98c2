package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowtrack/internal/domain/routine"
)

func strPtr(s string) *string { return &s }

func TestPatchRoutineNameOnly(t *testing.T) {
	r := routineWithMonday(1)
	r.Name = "Default Routine"
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	userRepo := &stubUserRepo{}
	uc := NewPatchRoutineUseCase(repo, userRepo, testLogger(t))

	got, err := uc.Execute(context.Background(), 1, PatchRoutineInput{Name: strPtr("Evening Care")})
	require.NoError(t, err)

	assert.Equal(t, "Evening Care", got.Name)
	assert.Equal(t, 1, repo.saveCalls)
	assert.Empty(t, userRepo.pushTokens)
}

func TestPatchRoutinePushTokenSyncsUser(t *testing.T) {
	r := routineWithMonday(1)
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	userRepo := &stubUserRepo{}
	uc := NewPatchRoutineUseCase(repo, userRepo, testLogger(t))

	got, err := uc.Execute(context.Background(), 1, PatchRoutineInput{PushToken: strPtr("tok-9")})
	require.NoError(t, err)

	assert.Equal(t, "tok-9", got.PushToken)
	assert.Equal(t, "tok-9", userRepo.pushTokens[1])
}

func TestPatchRoutineEmptyInputIsNoop(t *testing.T) {
	r := routineWithMonday(1)
	repo := &mockRoutineRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) (*routine.Routine, error) { return r, nil },
	}
	uc := NewPatchRoutineUseCase(repo, &stubUserRepo{}, testLogger(t))

	_, err := uc.Execute(context.Background(), 1, PatchRoutineInput{})
	require.NoError(t, err)
	assert.Zero(t, repo.saveCalls)
}

func TestPatchRoutineMissing(t *testing.T) {
	uc := NewPatchRoutineUseCase(&mockRoutineRepo{}, &stubUserRepo{}, testLogger(t))

	_, err := uc.Execute(context.Background(), 1, PatchRoutineInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, routine.ErrRoutineNotFound)
}
