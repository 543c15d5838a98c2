// Package routine holds the session lifecycle core: the weekly routine
// aggregate, the session status state machine, and the mark-done deadline
// evaluator. The same transition code serves the interactive handlers and
// the scheduled batch jobs; the two paths must never diverge.
package routine

import (
	"time"
)

// Weekdays lists the seven day names every routine carries, in calendar order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DefaultName is the display name given to a routine created at onboarding.
const DefaultName = "Default Routine"

// Routine is the weekly plan aggregate. Each user owns exactly one, created
// once at onboarding with seven empty days and destroyed only with the user.
type Routine struct {
	ID        uint
	UserID    uint
	Name      string
	PushToken string
	Days      []Day
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoutine creates the onboarding routine for a user: the default name
// and one empty day per weekday.
func NewRoutine(userID uint) *Routine {
	days := make([]Day, 0, len(Weekdays))
	for _, w := range Weekdays {
		days = append(days, Day{Weekday: w, Sessions: []Session{}})
	}
	return &Routine{
		UserID: userID,
		Name:   DefaultName,
		Days:   days,
	}
}

// DayFor returns the day matching the weekday name (case-insensitive), or nil.
func (r *Routine) DayFor(weekday string) *Day {
	for i := range r.Days {
		if r.Days[i].Is(weekday) {
			return &r.Days[i]
		}
	}
	return nil
}

// MarkSessionDone transitions the session at (weekday, timeStr) to done.
// Marking an already-done session again is a no-op; changed reports whether
// a transition actually happened. A session with no steps cannot be
// completed. Missing day or session is a not-found condition.
func (r *Routine) MarkSessionDone(weekday, timeStr string) (day *Day, changed bool, err error) {
	d := r.DayFor(weekday)
	if d == nil {
		return nil, false, ErrDayNotFound
	}
	s := d.FindSession(timeStr)
	if s == nil {
		return nil, false, ErrSessionNotFound
	}
	if !s.Actionable() {
		return nil, false, ErrSessionNotActionable
	}
	if s.Status == StatusDone {
		return d, false, nil
	}
	s.Status = StatusDone
	return d, true, nil
}

// ResetAllSessions returns every session of every day to pending.
// Idempotent: resetting an already-pending session is harmless.
// changed reports whether any session actually moved.
func (r *Routine) ResetAllSessions() (changed bool) {
	for di := range r.Days {
		for si := range r.Days[di].Sessions {
			if r.Days[di].Sessions[si].Status != StatusPending {
				r.Days[di].Sessions[si].Status = StatusPending
				changed = true
			}
		}
	}
	return changed
}
