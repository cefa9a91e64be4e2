// Package database provides the Postgres-backed alternative to the JSON
// snapshot store for the invoice and payment ledger. The snapshot model is
// fine for a single operator, but ledgers grow without bound, so they are the
// first store to move behind incremental persistence. Selected with
// STORE_DRIVER=postgres.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/registrarhq/registrar/internal/config"
	"github.com/registrarhq/registrar/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	log.Println("Connected to PostgreSQL ledger database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the ledger entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Invoice{},
		&entity.Payment{},
	)
}
