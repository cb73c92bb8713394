package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"go.uber.org/zap"
)

// CachedVideoSearcher wraps a VideoSearcher with a read-through cache keyed on the normalized query
type CachedVideoSearcher struct {
	next   outbound.VideoSearcher
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedVideoSearcher creates a cached video searcher
func NewCachedVideoSearcher(next outbound.VideoSearcher, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) *CachedVideoSearcher {
	return &CachedVideoSearcher{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("cached-videos"),
	}
}

// Search serves from cache when possible and stores successful provider results
func (c *CachedVideoSearcher) Search(ctx context.Context, query string, maxResults int) ([]outbound.Video, error) {
	key := videoCacheKey(query, maxResults)

	if data, err := c.cache.Get(ctx, key); err == nil {
		var videos []outbound.Video
		if jsonErr := json.Unmarshal(data, &videos); jsonErr == nil {
			return videos, nil
		}
		c.logger.Warn("Discarding undecodable cached videos", zap.String("key", key))
	} else if !errors.Is(err, outbound.ErrCacheMiss) {
		c.logger.Debug("Video cache read failed", zap.Error(err))
	}

	videos, err := c.next.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(videos); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Debug("Video cache write failed", zap.Error(err))
		}
	}

	return videos, nil
}

func videoCacheKey(query string, maxResults int) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("videos:%d:%s", maxResults, hex.EncodeToString(sum[:8]))
}
