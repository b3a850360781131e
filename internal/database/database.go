package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/models"
)

// Connect opens the database and returns the shared handle. The handle is
// created once in main and injected into everything that needs it; there is
// no package-global connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := resolveDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so
		// services can map them to conflict errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// resolveDSN validates the connection configuration. An explicit DATABASE_URL
// must carry one of the two accepted URI schemes; without one, the discrete
// DB_* fields are used.
func resolveDSN(cfg *config.Config) (string, error) {
	if cfg.DatabaseURL != "" {
		if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") &&
			!strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
			return "", fmt.Errorf("invalid DATABASE_URL: must start with postgres:// or postgresql://")
		}
		return cfg.DatabaseURL, nil
	}
	if cfg.DBHost == "" || cfg.DBName == "" {
		return "", fmt.Errorf("database configuration missing: set DATABASE_URL or DB_HOST/DB_NAME")
	}
	return cfg.DSN(), nil
}

// Migrate runs AutoMigrate for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.RFQ{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
