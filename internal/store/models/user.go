package models

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"not null" json:"email"`
	IsAdmin        bool   `gorm:"default:false" json:"is_admin"`
	HashedPassword string `gorm:"not null" json:"-"`
}
