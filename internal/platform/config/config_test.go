package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap(t *testing.T) {
	t.Run("applies defaults for an empty map", func(t *testing.T) {
		cfg, err := LoadFromMap(map[string]string{})

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "postgresql", cfg.Database.Type)
		assert.Equal(t, "bizboard", cfg.Database.Postgres.Database)
		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		cfg, err := LoadFromMap(map[string]string{
			"SERVER_PORT":       "9090",
			"POSTGRES_HOST":     "db.internal",
			"POSTGRES_DATABASE": "board_prod",
			"CACHE_BACKEND":     "redis",
			"CACHE_TTL":         "30s",
			"REDIS_ADDRESS":     "redis.internal:6379",
		})

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
		assert.Equal(t, "board_prod", cfg.Database.Postgres.Database)
		assert.Equal(t, "redis", cfg.Cache.Backend)
		assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
		assert.Equal(t, "redis.internal:6379", cfg.Cache.Redis.Address)
	})

	t.Run("rejects an unsupported database type", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{
			"DB_TYPE": "mysql",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_TYPE")
	})

	t.Run("rejects an unknown cache backend when enabled", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{
			"CACHE_BACKEND": "memcached",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_BACKEND")
	})

	t.Run("ignores the backend when the cache is disabled", func(t *testing.T) {
		cfg, err := LoadFromMap(map[string]string{
			"CACHE_ENABLED": "false",
			"CACHE_BACKEND": "memcached",
		})

		require.NoError(t, err)
		assert.False(t, cfg.Cache.Enabled)
	})

	t.Run("rejects an out-of-range port", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{
			"SERVER_PORT": "70000",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		cfg, err := LoadFromMap(map[string]string{
			"SERVER_PORT": "not-a-number",
		})

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
	})
}
