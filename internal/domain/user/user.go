// Package user holds the minimal user entity the tracker core needs.
// Accounts and authentication live outside this module; callers present an
// already-validated user identity.
package user

import "time"

// User is the owner of a routine and a stream of tracker records.
// Streak is fully derived from tracker dates; only the streak recompute
// paths write it.
type User struct {
	ID        uint
	Email     string
	Name      string
	PushToken string
	Streak    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
