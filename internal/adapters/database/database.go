// Package database provides GORM-backed adapters for the preference store
package database

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// Open connects to the SQL backend selected by cfg and runs migrations
func Open(cfg *config.StoreConfig) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	var dialector gorm.Dialector
	switch cfg.Type {
	case config.StoreTypeSQLite:
		if cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
				return nil, errors.NewStorageError("failed to create sqlite directory", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StoreTypePostgres:
		dialector = postgres.Open(cfg.Database.GetDSN())
	default:
		return nil, errors.NewConfigurationError("store type "+cfg.Type.String()+" is not a SQL backend", nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to database", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the preference schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&PreferenceModel{}); err != nil {
		return errors.NewStorageError("failed to run migrations", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewStorageError("failed to close database", err)
	}
	return nil
}
