// Package tracker holds the daily activity record and the consecutive-day
// streak calculator. One tracker exists per user per calendar date; the
// streak is fully derived from the set of tracker dates and never
// hand-edited.
package tracker

import (
	"time"

	"glowtrack/internal/shared/biztime"
)

// Tracker is one user's activity record for a single calendar date.
// ClassSummary is the upstream detection output, recorded opaquely.
type Tracker struct {
	ID           uint
	UserID       uint
	Date         biztime.Date
	ClassSummary map[string]interface{}
	ImageURL     string
	TimeOfDay    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
