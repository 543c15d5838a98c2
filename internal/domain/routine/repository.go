package routine

import "context"

// Repository is the persistence port for routine aggregates.
//
// Writes are last-writer-wins over the whole day document: SaveDays
// replaces only the days column, so a concurrent interactive update and a
// batch sweep of the same routine race at day granularity rather than the
// full aggregate. Single-document atomicity is assumed; no multi-document
// transaction is required by this core.
type Repository interface {
	// FindByUserID returns the user's routine, or ErrRoutineNotFound.
	FindByUserID(ctx context.Context, userID uint) (*Routine, error)

	// Create persists a new routine aggregate.
	Create(ctx context.Context, r *Routine) error

	// Save persists the full aggregate (name, push token, and days).
	Save(ctx context.Context, r *Routine) error

	// SaveDays persists only the day documents of the aggregate.
	SaveDays(ctx context.Context, r *Routine) error

	// ListPage returns a page of routines ordered by primary key.
	// An empty slice signals the end of the collection.
	ListPage(ctx context.Context, offset, limit int) ([]*Routine, error)
}
