// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	gormModels "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDatabase opens the SQLite database at cfg.Path and migrates the schema.
// An empty path opens a private in-memory database.
func SetupDatabase(cfg config.DatabaseConfig, log *zap.Logger, recorder gormModels.QueryRecorder) (*gorm.DB, error) {
	dsn := cfg.Path
	if dsn == "" {
		dsn = "file::memory:"
	}
	// Foreign keys are off by default in SQLite
	dsn = withPragma(dsn, "_foreign_keys=1")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormModels.NewLogger(log, cfg.LogLevel, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// SQLite serializes writers; a single connection also keeps in-memory databases alive
	sqlDB.SetMaxOpenConns(1)

	if err := db.Use(gormModels.NewQueryMonitor(recorder, log, cfg.SlowQueryThreshold)); err != nil {
		return nil, fmt.Errorf("failed to install query monitor: %w", err)
	}

	if cfg.AutoMigrate {
		if err := gormModels.AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("SQLite database ready", zap.String("path", dsn))
	return db, nil
}

func withPragma(dsn, pragma string) string {
	for i := 0; i < len(dsn); i++ {
		if dsn[i] == '?' {
			return dsn + "&" + pragma
		}
	}
	return dsn + "?" + pragma
}
