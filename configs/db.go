package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.CartEntry{},
		&entity.Payment{}, &entity.PaymentItem{},
		&entity.Review{},
	)
}

// CloseDB releases the underlying connection pool on shutdown.
func CloseDB() error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
