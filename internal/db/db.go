package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karthikas/kmcward/internal/config"
	"github.com/karthikas/kmcward/internal/models"
)

var DB *gorm.DB

// Initialize sets up the database connection, runs migrations, and seeds
// the default admin account.
func Initialize(cfg *config.Config) error {
	dbPath := cfg.Database.Path

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	gormLogger := logger.Default.LogMode(logger.Silent) // Quiet by default
	if cfg.Database.LogMode {
		gormLogger = logger.Default
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	return nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Baby{},
		&models.Parent{},
		&models.Staff{},
		&models.Session{},
	)
}

// seedAdmin makes sure the default admin account exists at first run.
func seedAdmin() error {
	var admin models.Staff
	err := DB.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin = models.Staff{
		Name:     "Administrator",
		Username: "admin",
		Password: "admin123",
		IsAdmin:  true,
	}
	return DB.Create(&admin).Error
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
