package models

import "time"

// UserModel persists the user record.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Name      string `gorm:"size:255"`
	PushToken string `gorm:"size:255"`
	Streak    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
