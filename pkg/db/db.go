package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quevon24/webbase/pkg/config"
)

// Connect establishes a database connection using the given settings.
func Connect(settings *config.Settings) (*gorm.DB, error) {
	dsn := settings.DatabaseDSN()

	// Default to silent logging unless LOG_LEVEL=debug is set
	logMode := logger.Silent
	if settings.LogLevel == "debug" {
		logMode = logger.Info
	}

	database, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}
