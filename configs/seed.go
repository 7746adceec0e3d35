package configs

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

// SeedAdmin makes sure the configured bootstrap account holds the admin
// role. Safe to run on every start.
func SeedAdmin(email string) error {
	if email == "" {
		return nil
	}

	var u entity.User
	err := db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&entity.User{Email: email, Name: "Administrator", Role: "admin"}).Error
	}
	if err != nil {
		return err
	}
	if u.Role == "admin" {
		return nil
	}
	return db.Model(&u).Update("role", "admin").Error
}
