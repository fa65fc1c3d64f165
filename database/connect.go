package database

import (
	"fmt"
	"time"

	"movie_catalog/config"
	"movie_catalog/model"

	"github.com/hashicorp/go-hclog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured store, migrates the catalog tables and seeds
// them when DB_SEED is set.
func Connect(s config.Settings, log hclog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(s.DBPath)
	default:
		dialector = postgres.Open(s.DSN())
	}

	db, err := Open(dialector, gormLogger(log, s.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(s.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(s.DBMaxIdleConns)
	if s.DBDriver == "sqlite" {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}
	log.Info("connection opened to database", "driver", s.DBDriver)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrated")

	if s.DBSeed {
		if err := SeedData(db); err != nil {
			return nil, err
		}
		log.Info("database seeded")
	}
	return db, nil
}

// Open wraps gorm.Open with the settings every store of the catalog needs.
func Open(dialector gorm.Dialector, l logger.Interface) (*gorm.DB, error) {
	if l == nil {
		l = logger.Discard
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:         l,
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Director{}, &model.Movie{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func gormLogger(log hclog.Logger, level string) logger.Interface {
	logLevel := logger.Warn
	if level == "debug" || level == "trace" {
		logLevel = logger.Info
	}
	writer := log.Named("gorm").StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})
	return logger.New(writer, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	})
}
