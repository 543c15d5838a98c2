package user

import "context"

// Repository is the persistence port for users.
type Repository interface {
	// FindByID returns the user, or a not-found error.
	FindByID(ctx context.Context, id uint) (*User, error)

	// SetStreak writes the derived streak value for the user.
	SetStreak(ctx context.Context, id uint, streak int) error

	// SetPushToken updates the user's notification destination token.
	SetPushToken(ctx context.Context, id uint, token string) error

	// ListPage returns a page of users ordered by primary key.
	// An empty slice signals the end of the collection.
	ListPage(ctx context.Context, offset, limit int) ([]*User, error)
}
