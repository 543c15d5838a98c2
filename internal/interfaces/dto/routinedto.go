package dto

import (
	"glowtrack/internal/domain/routine"
)

// StepRequest is one step inside a session payload.
type StepRequest struct {
	StepName  string `json:"step_name" validate:"required,max=255"`
	StepOrder int    `json:"step_order" validate:"min=0"`
}

// SessionRequest is one session inside an update-day payload.
type SessionRequest struct {
	Time   string        `json:"time" validate:"required,max=16"`
	Status string        `json:"status" validate:"omitempty,oneof=pending done not_done"`
	Steps  []StepRequest `json:"steps" validate:"dive"`
}

// UpdateDayRequest replaces the sessions of one weekday.
type UpdateDayRequest struct {
	DayOfWeek string           `json:"day_of_week" validate:"required"`
	Sessions  []SessionRequest `json:"sessions" validate:"required,dive"`
}

// MarkSessionDoneRequest marks one session complete.
type MarkSessionDoneRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
	Time      string `json:"time" validate:"required,max=16"`
}

// UpdatePushTokenRequest updates the notification destination.
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required,max=255"`
}

// UpdateRoutineNameRequest renames the routine.
type UpdateRoutineNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// PatchRoutineRequest partially updates the routine. Absent fields are
// left unchanged.
type PatchRoutineRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	PushToken *string `json:"push_token" validate:"omitempty,max=255"`
}

// StepResponse mirrors a routine step.
type StepResponse struct {
	StepName  string `json:"step_name"`
	StepOrder int    `json:"step_order"`
}

// SessionResponse mirrors a routine session.
type SessionResponse struct {
	Time   string         `json:"time"`
	Status string         `json:"status"`
	Steps  []StepResponse `json:"steps"`
}

// DayResponse mirrors one weekday of a routine.
type DayResponse struct {
	DayOfWeek string            `json:"day_of_week"`
	Sessions  []SessionResponse `json:"sessions"`
}

// RoutineResponse mirrors the full routine.
type RoutineResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	PushToken string        `json:"push_token,omitempty"`
	Days      []DayResponse `json:"days"`
}

// MarkSessionDoneResponse reports the outcome of a mark-done call.
type MarkSessionDoneResponse struct {
	Day         DayResponse `json:"day"`
	Changed     bool        `json:"changed"`
	OutOfWindow bool        `json:"out_of_window"`
}

// TodayResponse is today's slice of the routine.
type TodayResponse struct {
	RoutineName string      `json:"routine_name"`
	Day         DayResponse `json:"day"`
}

// ToSessions converts the request payload to domain sessions.
func (r *UpdateDayRequest) ToSessions() []routine.Session {
	sessions := make([]routine.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		steps := make([]routine.Step, 0, len(s.Steps))
		for _, st := range s.Steps {
			steps = append(steps, routine.Step{Name: st.StepName, Order: st.StepOrder})
		}
		sessions = append(sessions, routine.Session{
			Time:   s.Time,
			Status: routine.SessionStatus(s.Status),
			Steps:  steps,
		})
	}
	return sessions
}

// NewDayResponse maps a domain day.
func NewDayResponse(d *routine.Day) DayResponse {
	sessions := make([]SessionResponse, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		steps := make([]StepResponse, 0, len(s.Steps))
		for _, st := range s.Steps {
			steps = append(steps, StepResponse{StepName: st.Name, StepOrder: st.Order})
		}
		sessions = append(sessions, SessionResponse{
			Time:   s.Time,
			Status: string(s.Status),
			Steps:  steps,
		})
	}
	return DayResponse{DayOfWeek: d.Weekday, Sessions: sessions}
}

// NewRoutineResponse maps a domain routine.
func NewRoutineResponse(r *routine.Routine) RoutineResponse {
	days := make([]DayResponse, 0, len(r.Days))
	for i := range r.Days {
		days = append(days, NewDayResponse(&r.Days[i]))
	}
	return RoutineResponse{
		ID:        r.ID,
		Name:      r.Name,
		PushToken: r.PushToken,
		Days:      days,
	}
}
