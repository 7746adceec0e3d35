package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Rating  float64 `json:"rating"`
	Details string  `json:"details"`
}
