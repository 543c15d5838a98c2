package routine

// SessionStatus is the closed set of session lifecycle states.
// pending is the initial state; done and not_done are terminal for the
// day. Only the daily reset returns a session to pending.
type SessionStatus string

const (
	StatusPending SessionStatus = "pending"
	StatusDone    SessionStatus = "done"
	StatusNotDone SessionStatus = "not_done"
)

// Valid reports whether s is one of the known statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDone, StatusNotDone:
		return true
	}
	return false
}

// Terminal reports whether s ends the session's day cycle.
func (s SessionStatus) Terminal() bool {
	return s == StatusDone || s == StatusNotDone
}

func (s SessionStatus) String() string {
	return string(s)
}
