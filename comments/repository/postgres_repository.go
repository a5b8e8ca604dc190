// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sojang/bizboard/comments/models"
	"github.com/sojang/bizboard/internal/database/postgres"
)

// postgresCommentRepository implements CommentRepository using raw SQL queries
type postgresCommentRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a new PostgreSQL repository for comments
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresCommentRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return postgres.Executor(ctx, r.client)
}

// Create inserts a new comment
func (r *postgresCommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &id, query,
		comment.PostID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}

	comment.ID = id
	return id, nil
}

// FindByPost retrieves comments for a post with pagination
func (r *postgresCommentRepository) FindByPost(ctx context.Context, postID int64, limit, offset int) ([]*models.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	var comments []models.Comment
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &comments, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments by post: %w", err)
	}

	result := make([]*models.Comment, len(comments))
	for i := range comments {
		result[i] = &comments[i]
	}

	return result, nil
}

// DeleteByPost removes all comments for a post
func (r *postgresCommentRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	query := `DELETE FROM comments WHERE post_id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments for post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
