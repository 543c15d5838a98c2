package tracker

import (
	"context"

	"glowtrack/internal/shared/biztime"
)

// Repository is the persistence port for tracker records.
type Repository interface {
	// FindOrCreateForDate returns the user's tracker for the given date,
	// creating an empty one if none exists. created reports whether a new
	// record was made. The (user, date) pair is unique; concurrent calls
	// converge on a single record.
	FindOrCreateForDate(ctx context.Context, userID uint, date biztime.Date) (t *Tracker, created bool, err error)

	// Update persists changes to an existing tracker.
	Update(ctx context.Context, t *Tracker) error

	// ListDatesByUser returns the user's tracker dates in ascending order.
	ListDatesByUser(ctx context.Context, userID uint) ([]biztime.Date, error)
}
