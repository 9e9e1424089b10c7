package models

import "time"

type JobApplication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Company     string    `gorm:"not null" json:"company"`
	Position    string    `gorm:"not null" json:"position"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	DateApplied time.Time `json:"date_applied"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
}
