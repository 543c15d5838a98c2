package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoutineModel persists the weekly routine. The seven days and their
// sessions are stored as one JSON document so a routine is always written
// and read as a whole.
type RoutineModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex"`
	Name      string `gorm:"size:255;not null;default:'Default Routine'"`
	PushToken string `gorm:"size:255"`
	Days      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoutineModel) TableName() string {
	return "routines"
}
