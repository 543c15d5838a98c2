package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/domain/user"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// mockTrackerRepo is a func-field mock of tracker.Repository.
type mockTrackerRepo struct {
	findOrCreateFn func(ctx context.Context, userID uint, date biztime.Date) (*tracker.Tracker, bool, error)
	updateFn       func(ctx context.Context, t *tracker.Tracker) error
	listDatesFn    func(ctx context.Context, userID uint) ([]biztime.Date, error)

	updated *tracker.Tracker
}

func (m *mockTrackerRepo) FindOrCreateForDate(ctx context.Context, userID uint, date biztime.Date) (*tracker.Tracker, bool, error) {
	if m.findOrCreateFn != nil {
		return m.findOrCreateFn(ctx, userID, date)
	}
	return &tracker.Tracker{ID: 1, UserID: userID, Date: date}, true, nil
}

func (m *mockTrackerRepo) Update(ctx context.Context, t *tracker.Tracker) error {
	m.updated = t
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTrackerRepo) ListDatesByUser(ctx context.Context, userID uint) ([]biztime.Date, error) {
	if m.listDatesFn != nil {
		return m.listDatesFn(ctx, userID)
	}
	return nil, nil
}

// mockUserRepo is a func-field mock of user.Repository.
type mockUserRepo struct {
	findByIDFn     func(ctx context.Context, id uint) (*user.User, error)
	setStreakFn    func(ctx context.Context, id uint, streak int) error
	setPushTokenFn func(ctx context.Context, id uint, token string) error
	listPageFn     func(ctx context.Context, offset, limit int) ([]*user.User, error)

	mu      sync.Mutex
	streaks map[uint]int
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &user.User{ID: id}, nil
}

func (m *mockUserRepo) SetStreak(ctx context.Context, id uint, streak int) error {
	m.mu.Lock()
	if m.streaks == nil {
		m.streaks = map[uint]int{}
	}
	m.streaks[id] = streak
	m.mu.Unlock()
	if m.setStreakFn != nil {
		return m.setStreakFn(ctx, id, streak)
	}
	return nil
}

func (m *mockUserRepo) SetPushToken(ctx context.Context, id uint, token string) error {
	if m.setPushTokenFn != nil {
		return m.setPushTokenFn(ctx, id, token)
	}
	return nil
}

func (m *mockUserRepo) ListPage(ctx context.Context, offset, limit int) ([]*user.User, error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, offset, limit)
	}
	return nil, nil
}

// mockPublisher records published events.
type mockPublisher struct {
	mu     sync.Mutex
	events []tracker.RecordedEvent
	err    error
}

func (m *mockPublisher) PublishRecorded(ctx context.Context, event tracker.RecordedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	return nil
}

func testLogger(t *testing.T) logger.Interface {
	t.Helper()
	return logger.NewLogger()
}

func bizClock(year int, month time.Month, day, hour, minute int) biztime.FixedClock {
	loc := time.FixedZone("UTC+7", 7*3600)
	return biztime.FixedClock{T: time.Date(year, month, day, hour, minute, 0, 0, loc)}
}
