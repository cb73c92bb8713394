//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	redisCache "github.com/culinaryos/kitchen/internal/infrastructure/persistence/redis"
	"github.com/culinaryos/kitchen/internal/infrastructure/security"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

func TestRedisCacheContract(t *testing.T) {
	client := testutils.StartRedis(t)

	suite.Run(t, &testutils.CacheSuite{
		Open: func() outbound.CacheRepository {
			require.NoError(t, client.FlushDB(context.Background()).Err())
			return redisCache.NewCacheRepository(client, "culinaryos:test", zap.NewNop())
		},
	})
}

func TestTokenRevocationSurvivesAcrossInstances(t *testing.T) {
	client := testutils.StartRedis(t)
	ctx := context.Background()
	auth := config.AuthConfig{JWTSecret: "integration-secret-with-enough-bytes", JWTExpiration: time.Hour}

	first := security.NewTokenService(auth, redisCache.NewCacheRepository(client, "culinaryos", zap.NewNop()), zap.NewNop())
	second := security.NewTokenService(auth, redisCache.NewCacheRepository(client, "culinaryos", zap.NewNop()), zap.NewNop())

	token, err := first.Issue(uuid.New(), "cook@example.com")
	require.NoError(t, err)
	_, err = second.Validate(ctx, token)
	require.NoError(t, err)

	require.NoError(t, first.Revoke(ctx, token))

	_, err = second.Validate(ctx, token)
	require.ErrorIs(t, err, security.ErrTokenRevoked)
}
