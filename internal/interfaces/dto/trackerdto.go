package dto

import (
	"glowtrack/internal/domain/tracker"
)

// RecordTrackerRequest is one skin check submission.
type RecordTrackerRequest struct {
	ClassSummary map[string]interface{} `json:"class_summary"`
	ImageURL     string                 `json:"image_url" validate:"omitempty,url,max=512"`
}

// TrackerResponse mirrors one day's tracker record.
type TrackerResponse struct {
	ID           uint                   `json:"id"`
	Date         string                 `json:"date"`
	ClassSummary map[string]interface{} `json:"class_summary,omitempty"`
	ImageURL     string                 `json:"image_url,omitempty"`
	TimeOfDay    string                 `json:"time_of_day"`
}

// RecordTrackerResponse reports the submission outcome.
type RecordTrackerResponse struct {
	Tracker TrackerResponse `json:"tracker"`
	Created bool            `json:"created"`
	Streak  int             `json:"streak"`
}

// NewTrackerResponse maps a domain tracker.
func NewTrackerResponse(t *tracker.Tracker) TrackerResponse {
	return TrackerResponse{
		ID:           t.ID,
		Date:         t.Date.String(),
		ClassSummary: t.ClassSummary,
		ImageURL:     t.ImageURL,
		TimeOfDay:    t.TimeOfDay,
	}
}
