package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves values", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("misses an absent key", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		_, err := c.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("expires entries after their TTL", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("a zero TTL never expires", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("deletes multiple keys at once", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))
		require.NoError(t, c.Delete(ctx, "a", "b"))

		_, err := c.Get(ctx, "a")
		assert.ErrorIs(t, err, ErrKeyNotFound)
		_, err = c.Get(ctx, "b")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("callers cannot mutate stored values", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		original := []byte("value")
		require.NoError(t, c.Set(ctx, "k", original, time.Minute))
		original[0] = 'X'

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)

		got[0] = 'Y'
		again, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), again)
	})

	t.Run("rejects operations after close", func(t *testing.T) {
		c := NewMemoryCache()
		require.NoError(t, c.Close())

		assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), ErrCacheDisabled)
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheDisabled)
	})
}

func TestPostKey(t *testing.T) {
	assert.Equal(t, "bizboard:post:42", PostKey("bizboard:", 42))
	assert.Equal(t, "post:7", PostKey("", 7))
}
