package common

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowtrack/internal/shared/logger"
)

func pagedFetcher(items []int) PageFetcher[int] {
	return func(ctx context.Context, offset, limit int) ([]int, error) {
		if offset >= len(items) {
			return nil, nil
		}
		end := offset + limit
		if end > len(items) {
			end = len(items)
		}
		return items[offset:end], nil
	}
}

func TestRunnerProcessesAllPages(t *testing.T) {
	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}

	var (
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	runner := NewRunner[int]("test", 100, logger.NewLogger())
	res, err := runner.Run(context.Background(), pagedFetcher(items), func(ctx context.Context, item int) error {
		mu.Lock()
		seen[item] = true
		mu.Unlock()
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 250, res.Processed)
	assert.Zero(t, res.Failed)
	assert.Len(t, seen, 250)
}

func TestRunnerEmptyCollection(t *testing.T) {
	runner := NewRunner[int]("test", 100, logger.NewLogger())
	res, err := runner.Run(context.Background(), pagedFetcher(nil), func(ctx context.Context, item int) error {
		t.Fatal("processor should not run")
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, res.Processed)
}

func TestRunnerItemFailureDoesNotAbort(t *testing.T) {
	runner := NewRunner[int]("test", 10, logger.NewLogger())
	res, err := runner.Run(context.Background(), pagedFetcher([]int{1, 2, 3, 4}), func(ctx context.Context, item int) error {
		if item%2 == 0 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 2, res.Failed)
}

func TestRunnerItemPanicIsIsolated(t *testing.T) {
	runner := NewRunner[int]("test", 10, logger.NewLogger())
	res, err := runner.Run(context.Background(), pagedFetcher([]int{1, 2, 3}), func(ctx context.Context, item int) error {
		if item == 2 {
			panic("unexpected state")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Failed)
}

func TestRunnerFetchErrorAborts(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, offset, limit int) ([]int, error) {
		calls++
		if offset > 0 {
			return nil, errors.New("db gone")
		}
		page := make([]int, limit)
		return page, nil
	}

	runner := NewRunner[int]("test", 5, logger.NewLogger())
	res, err := runner.Run(context.Background(), fetch, func(ctx context.Context, item int) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 5")
	assert.Equal(t, 5, res.Processed)
	assert.Equal(t, 2, calls)
}

func TestRunnerDefaultsPageSize(t *testing.T) {
	runner := NewRunner[int]("test", 0, logger.NewLogger())
	assert.Equal(t, DefaultPageSize, runner.pageSize)
}
