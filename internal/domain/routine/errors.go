package routine

import "glowtrack/internal/shared/errors"

var (
	// ErrRoutineNotFound indicates no routine exists for the requested user.
	ErrRoutineNotFound = errors.NewNotFoundError("routine not found")

	// ErrDayNotFound indicates the weekday name matched no day in the routine.
	ErrDayNotFound = errors.NewNotFoundError("day not found in routine")

	// ErrSessionNotFound indicates no session matched the requested time string.
	ErrSessionNotFound = errors.NewNotFoundError("session not found")

	// ErrSessionNotActionable indicates the session has no steps and can
	// never be user-completed.
	ErrSessionNotActionable = errors.NewValidationError("session has no steps and cannot be completed")

	// ErrDeadlinePassed indicates the mark-done window has closed (enforced mode only).
	ErrDeadlinePassed = errors.NewValidationError("cannot mark session as done, deadline has passed")
)
