// Package postgres provides PostgreSQL database connection and management
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	gormModels "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/migrations"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// Open connects to PostgreSQL, configures the pool, registers read replicas and applies
// the embedded schema migrations
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger, recorder gormModels.QueryRecorder) (*gorm.DB, error) {
	log = log.Named("postgres")
	dbCfg := cfg.Database

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:                 gormModels.NewLogger(log, dbCfg.LogLevel, dbCfg.SlowQueryThreshold),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbCfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if replicas := cfg.ReplicaDSNs(); len(replicas) > 0 {
		if err := registerReplicas(db, replicas, dbCfg); err != nil {
			log.Warn("Failed to register read replicas", zap.Error(err))
		} else {
			log.Info("Read replicas configured",
				zap.Int("replica_count", len(replicas)),
				zap.String("policy", dbCfg.ReplicaPolicy),
			)
		}
	}

	if err := db.Use(gormModels.NewQueryMonitor(recorder, log, dbCfg.SlowQueryThreshold)); err != nil {
		return nil, fmt.Errorf("failed to install query monitor: %w", err)
	}

	// PostgreSQL schema is versioned; AutoMigrate is only used for SQLite
	if dbCfg.AutoMigrate {
		if err := migrations.Run(cfg.GetDSN(), log); err != nil {
			return nil, err
		}
	}

	log.Info("Database connection initialized",
		zap.Int("max_open_conns", dbCfg.MaxOpenConns),
		zap.Int("max_idle_conns", dbCfg.MaxIdleConns),
		zap.Duration("conn_max_lifetime", dbCfg.ConnMaxLifetime),
		zap.Duration("slow_query_threshold", dbCfg.SlowQueryThreshold),
	)

	return db, nil
}

func registerReplicas(db *gorm.DB, dsns []string, dbCfg config.DatabaseConfig) error {
	replicas := make([]gorm.Dialector, len(dsns))
	for i, dsn := range dsns {
		replicas[i] = postgres.Open(dsn)
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   LoadBalancePolicy(dbCfg.ReplicaPolicy),
	}).
		SetMaxOpenConns(dbCfg.MaxOpenConns).
		SetMaxIdleConns(dbCfg.MaxIdleConns).
		SetConnMaxLifetime(dbCfg.ConnMaxLifetime).
		SetConnMaxIdleTime(dbCfg.ConnMaxIdleTime)

	if err := db.Use(resolver); err != nil {
		return fmt.Errorf("failed to register read replicas: %w", err)
	}
	return nil
}

// LoadBalancePolicy converts a config name to a dbresolver policy
func LoadBalancePolicy(policy string) dbresolver.Policy {
	switch policy {
	case "round_robin":
		return dbresolver.RoundRobinPolicy()
	default:
		return dbresolver.RandomPolicy{}
	}
}
