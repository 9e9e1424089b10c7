package models

type Contact struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"not null" json:"email"`
	Phone  string `gorm:"not null" json:"phone"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
}
