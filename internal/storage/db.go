package storage

import (
	"fmt"

	"statechain-entity/internal/config"
	"statechain-entity/internal/logger"
	"statechain-entity/internal/storage/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open initializes the database connection and migrates the schema.
// TranslateError is required so that identifier collisions surface as
// gorm.ErrDuplicatedKey and can be told apart from an unavailable store.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Log.Info("Database connection successfully established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Log.Info("Database schema migrated.")

	return db, nil
}

// Migrate creates or updates the session and lockbox tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UserSession{}, &models.Lockbox{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
