package models

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
}
