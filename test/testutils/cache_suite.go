package testutils

import (
	"context"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/stretchr/testify/suite"
)

// CacheSuite checks the CacheRepository contract for any backend returned by Open
type CacheSuite struct {
	suite.Suite

	// Open returns a fresh, empty cache for each test
	Open func() outbound.CacheRepository

	ctx   context.Context
	cache outbound.CacheRepository
}

func (s *CacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.cache = s.Open()
}

func (s *CacheSuite) TestMiss() {
	_, err := s.cache.Get(s.ctx, "absent")
	s.ErrorIs(err, outbound.ErrCacheMiss)

	ok, err := s.cache.Exists(s.ctx, "absent")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestSetGetDelete() {
	s.Require().NoError(s.cache.Set(s.ctx, "recipes:catalog", []byte(`[{"title":"Rice Bowl"}]`), time.Minute))
	s.Require().NoError(s.cache.Set(s.ctx, "other", []byte("x"), time.Minute))

	got, err := s.cache.Get(s.ctx, "recipes:catalog")
	s.Require().NoError(err)
	s.JSONEq(`[{"title":"Rice Bowl"}]`, string(got))

	s.Require().NoError(s.cache.Delete(s.ctx, "recipes:catalog", "other", "never-set"))
	_, err = s.cache.Get(s.ctx, "other")
	s.ErrorIs(err, outbound.ErrCacheMiss)
}

func (s *CacheSuite) TestExpiry() {
	s.Require().NoError(s.cache.Set(s.ctx, "revoked_token:abc", []byte("revoked"), time.Second))

	ok, err := s.cache.Exists(s.ctx, "revoked_token:abc")
	s.Require().NoError(err)
	s.True(ok)

	s.Eventually(func() bool {
		ok, err := s.cache.Exists(s.ctx, "revoked_token:abc")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}
