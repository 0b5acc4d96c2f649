package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres connects to Postgres and reconciles the schema with
// AutoMigrate. The embedded SQL migrations are SQLite dialect and are not
// applied here.
func OpenPostgres(dsn string, log logrus.FieldLogger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open postgres: empty DATABASE_URL")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Cycle{},
		&models.Notification{},
		&models.Prediction{},
		&models.Medicine{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate postgres schema: %w", err)
	}

	return database, nil
}
