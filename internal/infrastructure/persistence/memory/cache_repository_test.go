package memory

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository(time.Hour)
	defer cache.Close()

	t.Run("miss on absent key", func(t *testing.T) {
		_, err := cache.Get(ctx, "absent")
		assert.ErrorIs(t, err, outbound.ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
		got, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		ok, err := cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired key is a miss and is swept", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := cache.Get(ctx, "short")
		assert.ErrorIs(t, err, outbound.ErrCacheMiss)

		before := cache.Len()
		cache.sweep(time.Now())
		assert.Equal(t, before-1, cache.Len())
	})

	t.Run("delete several keys", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, cache.Set(ctx, "b", []byte("2"), 0))
		require.NoError(t, cache.Delete(ctx, "a", "b"))

		ok, _ := cache.Exists(ctx, "a")
		assert.False(t, ok)
		ok, _ = cache.Exists(ctx, "b")
		assert.False(t, ok)
	})

	t.Run("stored value is isolated from caller", func(t *testing.T) {
		buf := []byte("abc")
		require.NoError(t, cache.Set(ctx, "iso", buf, 0))
		buf[0] = 'z'
		got, err := cache.Get(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})
}
