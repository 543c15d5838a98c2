package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/logger"
)

// mockRoutineRepo is a func-field mock of routine.Repository.
type mockRoutineRepo struct {
	findByUserIDFn func(ctx context.Context, userID uint) (*routine.Routine, error)
	createFn       func(ctx context.Context, r *routine.Routine) error
	saveFn         func(ctx context.Context, r *routine.Routine) error
	saveDaysFn     func(ctx context.Context, r *routine.Routine) error
	listPageFn     func(ctx context.Context, offset, limit int) ([]*routine.Routine, error)

	mu            sync.Mutex
	saveCalls     int
	saveDaysCalls int
}

func (m *mockRoutineRepo) FindByUserID(ctx context.Context, userID uint) (*routine.Routine, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, routine.ErrRoutineNotFound
}

func (m *mockRoutineRepo) Create(ctx context.Context, r *routine.Routine) error {
	if m.createFn != nil {
		return m.createFn(ctx, r)
	}
	return nil
}

func (m *mockRoutineRepo) Save(ctx context.Context, r *routine.Routine) error {
	m.mu.Lock()
	m.saveCalls++
	m.mu.Unlock()
	if m.saveFn != nil {
		return m.saveFn(ctx, r)
	}
	return nil
}

func (m *mockRoutineRepo) SaveDays(ctx context.Context, r *routine.Routine) error {
	m.mu.Lock()
	m.saveDaysCalls++
	m.mu.Unlock()
	if m.saveDaysFn != nil {
		return m.saveDaysFn(ctx, r)
	}
	return nil
}

func (m *mockRoutineRepo) ListPage(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, offset, limit)
	}
	return nil, nil
}

// singlePage wraps a fixed routine set as a one-page listing.
func singlePage(routines ...*routine.Routine) func(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
	return func(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
		if offset > 0 {
			return nil, nil
		}
		return routines, nil
	}
}

// stubUserRepo records push token writes; the other methods are inert.
type stubUserRepo struct {
	pushTokens map[uint]string
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return &user.User{ID: id}, nil
}

func (s *stubUserRepo) SetStreak(ctx context.Context, id uint, streak int) error {
	return nil
}

func (s *stubUserRepo) SetPushToken(ctx context.Context, id uint, token string) error {
	if s.pushTokens == nil {
		s.pushTokens = map[uint]string{}
	}
	s.pushTokens[id] = token
	return nil
}

func (s *stubUserRepo) ListPage(ctx context.Context, offset, limit int) ([]*user.User, error) {
	return nil, nil
}

// mockDispatcher is a func-field mock of notification.Dispatcher.
type mockDispatcher struct {
	deliverFn func(ctx context.Context, token, title, body string) (bool, error)
}

func (m *mockDispatcher) Deliver(ctx context.Context, token, title, body string) (bool, error) {
	if m.deliverFn != nil {
		return m.deliverFn(ctx, token, title, body)
	}
	return true, nil
}

func testLogger(t *testing.T) logger.Interface {
	t.Helper()
	return logger.NewLogger()
}

// mondayAt returns a Monday instant in the business offset.
// 2025-03-10 is a Monday.
func mondayAt(hour, minute int) time.Time {
	loc := time.FixedZone("UTC+7", 7*3600)
	return time.Date(2025, 3, 10, hour, minute, 0, 0, loc)
}

func sessionWith(timeStr string, status routine.SessionStatus, steps int) routine.Session {
	s := routine.Session{Time: timeStr, Status: status}
	for i := 0; i < steps; i++ {
		s.Steps = append(s.Steps, routine.Step{Name: "step", Order: i + 1})
	}
	return s
}

func routineWithMonday(userID uint, sessions ...routine.Session) *routine.Routine {
	r := routine.NewRoutine(userID)
	r.ID = userID
	r.DayFor("Monday").Sessions = sessions
	return r
}
