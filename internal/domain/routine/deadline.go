package routine

import (
	"time"

	"glowtrack/internal/shared/biztime"
)

// DeadlineWindow is how long after its scheduled time a session may still
// be marked done.
const DeadlineWindow = time.Hour

// WithinDeadline reports whether now falls inside the mark-done window for
// the given session time: from the scheduled time through exactly one hour
// after it, on now's calendar day in the business offset. An unparseable
// time string fails closed.
//
// The window check is deliberately decoupled from the state transition:
// callers decide whether an out-of-window attempt is rejected (enforced
// mode) or merely flagged (advisory mode).
func WithinDeadline(timeStr string, now time.Time) bool {
	at, err := biztime.SessionTimeOn(now, timeStr)
	if err != nil {
		return false
	}
	deadline := at.Add(DeadlineWindow)
	return !now.Before(at) && !now.After(deadline)
}
