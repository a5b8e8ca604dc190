// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sojang/bizboard/internal/database/postgres"
)

// postgresLikeRepository implements LikeRepository using raw SQL queries
type postgresLikeRepository struct {
	client *postgres.Client
}

// NewPostgresLikeRepository creates a new PostgreSQL repository for likes
func NewPostgresLikeRepository(client *postgres.Client) LikeRepository {
	return &postgresLikeRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresLikeRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return postgres.Executor(ctx, r.client)
}

// Insert adds a like row. ON CONFLICT DO NOTHING makes a duplicate insert a
// no-op instead of an error, so the affected-row count tells the caller
// whether the user had already liked the post.
func (r *postgresLikeRepository) Insert(ctx context.Context, postID, userID int64) (bool, error) {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes a like row
func (r *postgresLikeRepository) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Exists reports whether a like row exists for the pair
func (r *postgresLikeRepository) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}

// DeleteByPost removes all likes for a post
func (r *postgresLikeRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	query := `DELETE FROM likes WHERE post_id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete likes for post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
