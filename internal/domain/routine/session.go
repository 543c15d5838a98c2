package routine

import "strings"

// Step is one ordered entry of a session's step list. Steps are opaque to
// the session state machine; only their count and presence matter to it.
type Step struct {
	Name  string `json:"step_name"`
	Order int    `json:"step_order"`
}

// Session is one scheduled occurrence of a step set at a time of day.
// Time is the civil clock string as the client supplied it ("08:00 AM");
// it is the session's identity within a day, matched exactly.
type Session struct {
	Time   string        `json:"time"`
	Status SessionStatus `json:"status"`
	Steps  []Step        `json:"steps"`
}

// Actionable reports whether the session can ever be completed by a user.
// A session with no steps is never actionable and is driven to not_done
// by batch processing.
func (s *Session) Actionable() bool {
	return len(s.Steps) > 0
}

// TimeKey returns the trimmed time string used for exact matching.
func (s *Session) TimeKey() string {
	return strings.TrimSpace(s.Time)
}
