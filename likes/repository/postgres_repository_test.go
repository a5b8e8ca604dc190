// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sojang/bizboard/internal/database/postgres"
	platformconfig "github.com/sojang/bizboard/internal/platform/config"
)

// setupTestDB connects to the database named by the POSTGRES_* environment
// variables. These tests run only when RUN_DB_TESTS=1.
func setupTestDB(t *testing.T) *postgres.Client {
	t.Helper()

	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("skipping database tests; set RUN_DB_TESTS=1 to run")
	}

	cfg, err := platformconfig.LoadFromEnv()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	schema := `
		CREATE TABLE IF NOT EXISTS posts (
			id          BIGSERIAL PRIMARY KEY,
			title       VARCHAR(200) NOT NULL,
			content     TEXT NOT NULL,
			user_id     BIGINT NOT NULL,
			industry_id BIGINT,
			like_count  BIGINT NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS likes (
			id         BIGSERIAL PRIMARY KEY,
			post_id    BIGINT NOT NULL,
			user_id    BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT likes_post_user_unique UNIQUE (post_id, user_id)
		);
		TRUNCATE likes;
	`
	_, err = client.DB().ExecContext(ctx, schema)
	require.NoError(t, err)

	return client
}

func TestPostgresLikeRepository(t *testing.T) {
	client := setupTestDB(t)
	repo := NewPostgresLikeRepository(client)
	ctx := context.Background()

	t.Run("insert is a no-op when the pair already exists", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, 42, 7)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = repo.Insert(ctx, 42, 7)
		require.NoError(t, err)
		assert.False(t, inserted)

		exists, err := repo.Exists(ctx, 42, 7)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete reports whether a row existed", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, 42, 7)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, 42, 7)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("delete by post removes every like", func(t *testing.T) {
		for _, userID := range []int64{1, 2, 3} {
			_, err := repo.Insert(ctx, 77, userID)
			require.NoError(t, err)
		}

		removed, err := repo.DeleteByPost(ctx, 77)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)

		exists, err := repo.Exists(ctx, 77, 1)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
