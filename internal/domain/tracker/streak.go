package tracker

import "glowtrack/internal/shared/biztime"

// CalculateStreak computes the current consecutive-day streak from a user's
// tracker dates, given today's civil date. dates must be ascending with at
// most one entry per calendar date (the repository's find-or-create
// invariant).
//
// The walk runs newest to oldest against a cursor starting at today. A
// record equal to the cursor extends the streak and steps the cursor back
// one day. The first gap is forgiven exactly once, and only when the
// cursor is still at today, so a user who tracked through yesterday but
// not yet today keeps their full streak. Any other gap, or a second one, ends
// it. Records newer than the cursor (duplicate or out-of-order data) are
// skipped without consuming the forgiveness.
func CalculateStreak(dates []biztime.Date, today biztime.Date) int {
	streak := 0
	current := today
	allowSkipToday := true

	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		switch {
		case d == current:
			streak++
			current = current.AddDays(-1)
		case d.Before(current):
			if allowSkipToday && current == today {
				allowSkipToday = false
				current = current.AddDays(-1)
				if d == current {
					streak++
					current = current.AddDays(-1)
				} else {
					return streak
				}
			} else {
				return streak
			}
		default:
			// newer than the cursor: stale or duplicated data, ignore
			continue
		}
	}

	return streak
}
