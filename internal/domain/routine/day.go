package routine

import (
	"sort"
	"strings"
	"time"

	"glowtrack/internal/shared/biztime"
)

// Day is one weekday's ordered collection of sessions within a routine.
// Session order is not guaranteed persisted; any bulk mutation must
// re-sort before saving.
type Day struct {
	Weekday  string    `json:"day_of_week"`
	Sessions []Session `json:"sessions"`
}

// Is reports whether the day matches the given weekday name, case-insensitively.
func (d *Day) Is(weekday string) bool {
	return strings.EqualFold(d.Weekday, weekday)
}

// FindSession returns the session whose time string matches exactly, or nil.
func (d *Day) FindSession(timeStr string) *Session {
	key := strings.TrimSpace(timeStr)
	for i := range d.Sessions {
		if d.Sessions[i].TimeKey() == key {
			return &d.Sessions[i]
		}
	}
	return nil
}

// ApplyUpdate merges a bulk session upsert into the day. Status precedence,
// per incoming session:
//  1. an explicit done is accepted as-is (idempotent re-submission);
//  2. a session already stored at the same time keeps its stored status,
//     so stale pending data can never revert a done or not_done;
//  3. a genuinely new session whose clock time has already passed today
//     starts at not_done;
//  4. otherwise the client-supplied status stands (empty defaults to pending).
//
// The incoming list replaces the day's sessions and is re-sorted by parsed
// time. now must be in the business offset.
func (d *Day) ApplyUpdate(incoming []Session, now time.Time) {
	stored := make(map[string]SessionStatus, len(d.Sessions))
	for _, s := range d.Sessions {
		stored[s.TimeKey()] = s.Status
	}

	merged := make([]Session, 0, len(incoming))
	for _, in := range incoming {
		s := in
		switch {
		case s.Status == StatusDone:
			// keep
		case hasStored(stored, s.TimeKey()):
			s.Status = stored[s.TimeKey()]
		case isPast(s.Time, now):
			s.Status = StatusNotDone
		default:
			if s.Status == "" {
				s.Status = StatusPending
			}
		}
		merged = append(merged, s)
	}

	d.Sessions = merged
	d.SortSessions()
}

func hasStored(stored map[string]SessionStatus, key string) bool {
	_, ok := stored[key]
	return ok
}

// isPast reports whether the session clock time falls before now on now's
// calendar day. Unparseable times are treated as not past so the client
// status survives; the deadline evaluator is where malformed times fail closed.
func isPast(timeStr string, now time.Time) bool {
	at, err := biztime.SessionTimeOn(now, timeStr)
	if err != nil {
		return false
	}
	return at.Before(now)
}

// SortSessions orders the day's sessions ascending by parsed time.
// Sessions with unparseable times sort after parseable ones, keeping
// their relative order.
func (d *Day) SortSessions() {
	sort.SliceStable(d.Sessions, func(i, j int) bool {
		ti, erri := biztime.ParseSessionClock(d.Sessions[i].Time)
		tj, errj := biztime.ParseSessionClock(d.Sessions[j].Time)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.Before(tj)
	})
}
