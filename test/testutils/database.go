// Package testutils provides common testing utilities and infrastructure setup
package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/postgres"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/sqlite"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IntegrationEnv enables tests that need Docker
const IntegrationEnv = "CULINARYOS_INTEGRATION"

// NewSQLiteDB opens a private in-memory SQLite database with the full schema
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase(config.DatabaseConfig{
		Driver:      "sqlite",
		LogLevel:    "silent",
		AutoMigrate: true,
	}, zap.NewNop(), nil)
	require.NoError(t, err, "Failed to open in-memory database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// PostgresConfig holds test container configuration
type PostgresConfig struct {
	Image    string
	Database string
	Username string
	Password string
	Port     string
}

// DefaultPostgresConfig returns the default test database configuration
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Image:    "postgres:15-alpine",
		Database: "culinaryos_test",
		Username: "test_user",
		Password: "test_password",
		Port:     "5432",
	}
}

// TestPostgres is a migrated PostgreSQL instance running in a container
type TestPostgres struct {
	Container testcontainers.Container
	DB        *gorm.DB
	Config    *config.Config
}

// StartPostgres starts PostgreSQL with testcontainers and opens it through the
// production connection path. Skipped unless CULINARYOS_INTEGRATION is set.
func StartPostgres(t *testing.T) *TestPostgres {
	t.Helper()
	if os.Getenv(IntegrationEnv) == "" {
		t.Skipf("set %s=1 to run PostgreSQL integration tests", IntegrationEnv)
	}

	ctx := context.Background()
	cfg := DefaultPostgresConfig()
	port := nat.Port(cfg.Port + "/tcp")

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        cfg.Image,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"POSTGRES_DB":       cfg.Database,
				"POSTGRES_USER":     cfg.Username,
				"POSTGRES_PASSWORD": cfg.Password,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
				wait.ForListeningPort(port),
			),
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,noexec,nosuid,size=256m",
			},
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	appCfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "postgres",
			DSN: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				cfg.Username, cfg.Password, host, mapped.Port(), cfg.Database),
			MaxOpenConns:       5,
			MaxIdleConns:       2,
			ConnMaxLifetime:    time.Hour,
			ConnMaxIdleTime:    10 * time.Minute,
			LogLevel:           "silent",
			SlowQueryThreshold: time.Second,
			AutoMigrate:        true,
		},
	}

	db, err := postgres.Open(ctx, appCfg, zap.NewNop(), nil)
	require.NoError(t, err, "Failed to open postgres")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &TestPostgres{Container: container, DB: db, Config: appCfg}
}
