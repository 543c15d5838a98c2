// Package common provides application-level building blocks shared by the
// scheduled jobs.
package common

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"glowtrack/internal/shared/logger"
)

// DefaultPageSize is the batch page size used when none is configured.
const DefaultPageSize = 100

// PageFetcher returns one page of items at the given offset. An empty page
// signals the end of the collection.
type PageFetcher[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// ItemProcessor applies the per-item transition. Errors mark the item
// failed but never the page.
type ItemProcessor[T any] func(ctx context.Context, item T) error

// Result summarizes one batch run.
type Result struct {
	Processed int
	Failed    int
}

// Runner sweeps an entire collection in fixed-size pages. Pages are
// fetched and processed strictly sequentially; within a page every item is
// processed concurrently, with fan-in before the next fetch. A failing or
// panicking item is logged and skipped so the rest of its page still
// completes. Runs are not resumable: a shutdown mid-run leaves later pages
// untouched until the next scheduled firing.
type Runner[T any] struct {
	name     string
	pageSize int
	logger   logger.Interface
}

// NewRunner creates a Runner. pageSize falls back to DefaultPageSize when
// not positive.
func NewRunner[T any](name string, pageSize int, log logger.Interface) *Runner[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Runner[T]{
		name:     name,
		pageSize: pageSize,
		logger:   log,
	}
}

// Run sweeps the collection until fetch returns an empty page. A fetch
// error aborts the run; item errors never do.
func (r *Runner[T]) Run(ctx context.Context, fetch PageFetcher[T], process ItemProcessor[T]) (Result, error) {
	var (
		res Result
		mu  sync.Mutex
	)

	offset := 0
	for {
		page, err := fetch(ctx, offset, r.pageSize)
		if err != nil {
			return res, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			return res, nil
		}

		var wg sync.WaitGroup
		for _, item := range page {
			wg.Add(1)
			go func(item T) {
				defer wg.Done()
				defer func() {
					if rec := recover(); rec != nil {
						mu.Lock()
						res.Failed++
						mu.Unlock()
						r.logger.Errorw("batch item panicked",
							"job", r.name,
							"panic", fmt.Sprintf("%v", rec),
							"stack", string(debug.Stack()),
						)
					}
				}()

				if err := process(ctx, item); err != nil {
					mu.Lock()
					res.Failed++
					mu.Unlock()
					r.logger.Warnw("batch item failed", "job", r.name, "error", err)
					return
				}

				mu.Lock()
				res.Processed++
				mu.Unlock()
			}(item)
		}
		wg.Wait()

		offset += r.pageSize
	}
}
