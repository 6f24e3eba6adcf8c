package infrastructure

import (
	"fmt"
	"time"

	"user-api-service/internal/adapter/db/postgres"
	"user-api-service/internal/config"
	"user-api-service/internal/usecase/user"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the database connection, configures the pool, and
// runs the idempotent schema migration.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DB.ConnMaxIdleTime) * time.Second)

	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	l.Info("database connected",
		zap.String("dsn", config.RedactDSN(cfg.DB.DSN())),
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.DB.MaxIdleConns),
	)

	return db, nil
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB, l *zap.Logger) user.Repository {
	return postgres.NewUserRepoPG(db, l)
}

// CloseDatabase closes the database connection.
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
