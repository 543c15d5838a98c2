package models

import (
	"time"

	"gorm.io/datatypes"
)

// TrackerModel persists one user's activity record for one calendar date.
// Date is stored as DATE in the business timezone; the (user, date)
// uniqueness backs the find-or-create upsert.
type TrackerModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_trackers_user_date,priority:1"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_trackers_user_date,priority:2"`
	ClassSummary datatypes.JSON
	ImageURL     string `gorm:"size:512"`
	TimeOfDay    string `gorm:"size:8"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TrackerModel) TableName() string {
	return "trackers"
}
