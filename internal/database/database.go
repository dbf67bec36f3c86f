// Package database owns the session-scoped SQLite store.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"stockswipe/internal/logger"
	"stockswipe/internal/models"
)

// DefaultDSN is a named, shared-cache in-memory database. It lives for as
// long as at least one connection stays open.
const DefaultDSN = "file:stockswipe?mode=memory&cache=shared"

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens the database at dsn. An empty dsn uses DefaultDSN.
func NewManager(dsn string) (*Manager, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// SQLite serializes writers; one connection also keeps the in-memory
	// database from being dropped between queries.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &Manager{db: db}, nil
}

// RunMigrations creates or updates the schema for all models.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")
	if err := m.db.AutoMigrate(&models.Pick{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection, discarding an in-memory database.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
