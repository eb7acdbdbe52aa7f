package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shortlink/models"
)

var DB *gorm.DB

const (
	maxRetries = 5
	retryDelay = 3 * time.Second
)

// Connect opens the Postgres connection, retrying while the database comes
// up, and runs schema migration. The resulting handle is stored in DB.
func Connect(dsn string) error {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		time.Sleep(retryDelay)
	}
	if err != nil {
		return fmt.Errorf("connect to database after %d attempts: %w", maxRetries, err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	return nil
}

// Migrate creates or updates the schema for all application models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Link{}, &models.LinkAnalytic{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
