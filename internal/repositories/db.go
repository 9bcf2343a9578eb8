// Package repositories provides the data access layer. It owns the
// PostgreSQL connection and all per-entity repository implementations.
package repositories

import (
	"fmt"
	"log"
	"os"
	"time"

	"walletbook/internal/config"
	"walletbook/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection and migrates the schema.
// The returned handle is constructed once in main and injected into
// repositories; there is no package-level database singleton.
func Connect() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so
		// repositories can map them to domain sentinels.
		TranslateError: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  !config.IsProduction(),
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Income{},
		&models.Expense{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// ConfigurePool applies connection pool settings from the environment.
func ConfigurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour))
	sqlDB.SetConnMaxIdleTime(config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	return sqlDB.Ping()
}
