package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
	Role  string `gorm:"not null;default:guest" json:"role"`
}
