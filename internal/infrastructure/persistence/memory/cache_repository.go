// Package memory provides in-memory cache repository implementation
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
)

// CacheItem represents a cached item. A zero ExpiresAt never expires.
type CacheItem struct {
	Value     []byte
	ExpiresAt time.Time
}

func (i CacheItem) expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// CacheRepository implements in-memory cache repository
type CacheRepository struct {
	data  map[string]CacheItem
	mutex sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewCacheRepository creates a new in-memory cache repository that sweeps expired keys every interval
func NewCacheRepository(interval time.Duration) *CacheRepository {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	repo := &CacheRepository{
		data: make(map[string]CacheItem),
		stop: make(chan struct{}),
	}

	// Start cleanup goroutine
	go repo.cleanup(interval)

	return repo
}

var _ outbound.CacheRepository = (*CacheRepository)(nil)

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mutex.RLock()
	item, exists := r.data[key]
	r.mutex.RUnlock()

	if !exists || item.expired(time.Now()) {
		return nil, outbound.ErrCacheMiss
	}

	out := make([]byte, len(item.Value))
	copy(out, item.Value)
	return out, nil
}

// Set stores a value in cache with TTL. A zero TTL never expires.
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	item := CacheItem{Value: stored}
	if ttl > 0 {
		item.ExpiresAt = time.Now().Add(ttl)
	}

	r.mutex.Lock()
	r.data[key] = item
	r.mutex.Unlock()

	return nil
}

// Delete removes keys from cache
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, key := range keys {
		delete(r.data, key)
	}
	return nil
}

// Exists checks if a key exists in cache
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mutex.RLock()
	item, exists := r.data[key]
	r.mutex.RUnlock()

	return exists && !item.expired(time.Now()), nil
}

// Ping always succeeds
func (r *CacheRepository) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored keys, including expired ones not yet swept
func (r *CacheRepository) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.data)
}

// Close stops the cleanup goroutine
func (r *CacheRepository) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// cleanup removes expired items
func (r *CacheRepository) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(time.Now())
		case <-r.stop:
			return
		}
	}
}

func (r *CacheRepository) sweep(now time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for key, item := range r.data {
		if item.expired(now) {
			delete(r.data, key)
		}
	}
}
