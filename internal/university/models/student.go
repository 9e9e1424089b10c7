package models

import "gorm.io/datatypes"

type Student struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Age   int    `gorm:"not null" json:"age"`
	Email string `gorm:"not null" json:"email"`
	// Grades is persisted as a JSON array in a single column.
	Grades datatypes.JSONSlice[float64] `gorm:"not null" json:"grades"`
}
