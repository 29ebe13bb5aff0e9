package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub-backend/models"
)

func ConnectDatabase(settings Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(settings.DBDSN), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	// Parent tables before children so FK creation succeeds.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Offer{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
