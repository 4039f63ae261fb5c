package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillshare-backend/internal/config"
	logger "skillshare-backend/pkg/logging"
)

var dbInstance *gorm.DB

// InitDBFromConfig opens the Postgres connection described by the XML config
// and applies the pool settings. It must be called once before GetDB.
func InitDBFromConfig(cfg *config.APIConfig) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Username,
		cfg.DB.Password.Resolve(),
		cfg.DB.Names.SKILLSHARE,
		cfg.DB.SSLMode,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	if cfg.DB.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	}
	if cfg.DB.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	}
	if cfg.DB.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)
	}

	dbInstance = gdb
	logger.Info("Connected to database %s on %s:%d", cfg.DB.Names.SKILLSHARE, cfg.DB.Host, cfg.DB.Port)
	return nil
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return dbInstance
}

// SetDB overrides the shared handle. Intended for tests.
func SetDB(gdb *gorm.DB) {
	dbInstance = gdb
}
