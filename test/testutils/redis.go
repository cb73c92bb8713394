package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	redisCache "github.com/culinaryos/kitchen/internal/infrastructure/persistence/redis"
	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartRedis starts Redis with testcontainers and returns a connected client.
// Skipped unless CULINARYOS_INTEGRATION is set.
func StartRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	if os.Getenv(IntegrationEnv) == "" {
		t.Skipf("set %s=1 to run Redis integration tests", IntegrationEnv)
	}

	ctx := context.Background()
	port := nat.Port("6379/tcp")

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(port)},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start redis container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	client, err := redisCache.NewClient(ctx, config.RedisConfig{
		PoolSize:     5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}, fmt.Sprintf("%s:%s", host, mapped.Port()))
	require.NoError(t, err, "Failed to connect to redis")
	t.Cleanup(func() { _ = client.Close() })

	return client
}
