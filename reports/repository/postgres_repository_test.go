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
	"github.com/sojang/bizboard/reports/models"
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
		CREATE TABLE IF NOT EXISTS reports (
			report_id  BIGSERIAL PRIMARY KEY,
			post_id    BIGINT NOT NULL,
			user_id    BIGINT NOT NULL,
			reason     VARCHAR(500) NOT NULL,
			status     VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT reports_post_user_unique UNIQUE (post_id, user_id)
		);
		TRUNCATE reports RESTART IDENTITY;
	`
	_, err = client.DB().ExecContext(ctx, schema)
	require.NoError(t, err)

	return client
}

func TestPostgresReportRepository(t *testing.T) {
	client := setupTestDB(t)
	repo := NewPostgresReportRepository(client)
	ctx := context.Background()

	t.Run("a user can report a post only once", func(t *testing.T) {
		first := &models.Report{PostID: 42, UserID: 7, Reason: "spam"}
		created, err := repo.Create(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Positive(t, first.ReportID)
		assert.Equal(t, models.StatusPending, first.Status)

		duplicate := &models.Report{PostID: 42, UserID: 7, Reason: "spam again"}
		created, err = repo.Create(ctx, duplicate)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("different users can report the same post", func(t *testing.T) {
		other := &models.Report{PostID: 42, UserID: 8, Reason: "offensive"}
		created, err := repo.Create(ctx, other)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("status updates move reports between queues", func(t *testing.T) {
		pending, err := repo.FindByStatus(ctx, models.StatusPending, 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, pending)

		target := pending[0]
		found, err := repo.UpdateStatus(ctx, target.ReportID, models.StatusResolved)
		require.NoError(t, err)
		assert.True(t, found)

		resolved, err := repo.FindByStatus(ctx, models.StatusResolved, 10, 0)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, target.ReportID, resolved[0].ReportID)

		found, err = repo.UpdateStatus(ctx, 999999, models.StatusRejected)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete by post clears every report", func(t *testing.T) {
		removed, err := repo.DeleteByPost(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		pending, err := repo.FindByStatus(ctx, models.StatusPending, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}
