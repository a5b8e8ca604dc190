// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sojang/bizboard/internal/database/postgres"
	"github.com/sojang/bizboard/posts/models"
)

// postgresRepository implements PostRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresPostRepository creates a new PostgreSQL repository for posts
func NewPostgresPostRepository(client *postgres.Client) PostRepository {
	return &postgresRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return postgres.Executor(ctx, r.client)
}

// Create inserts a new post
func (r *postgresRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO posts (title, content, user_id, industry_id, like_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &id, query,
		post.Title, post.Content, post.UserID, post.IndustryID, post.LikeCount, post.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	post.ID = id
	return id, nil
}

// FindByID retrieves a post by its ID
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, title, content, user_id, industry_id, like_count, created_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return &post, nil
}

// Find retrieves posts matching the filter criteria with pagination
func (r *postgresRepository) Find(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, error) {
	query, args := r.buildFindQuery(filter, limit, offset)

	var posts []models.Post
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}

	result := make([]*models.Post, len(posts))
	for i := range posts {
		result[i] = &posts[i]
	}

	return result, nil
}

// Count returns the number of posts matching the filter criteria
func (r *postgresRepository) Count(ctx context.Context, filter models.PostFilter) (int64, error) {
	query, args := r.buildCountQuery(filter)

	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// AdjustLikeCount atomically applies a relative delta to the like counter
func (r *postgresRepository) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error) {
	query := `
		UPDATE posts
		SET like_count = like_count + $1
		WHERE id = $2
		RETURNING like_count
	`

	var likeCount int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &likeCount, query, delta, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("post not found: %w", err)
		}
		return 0, fmt.Errorf("failed to adjust like count: %w", err)
	}

	return likeCount, nil
}

// GetLikeCount reads the current counter value
func (r *postgresRepository) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	query := `SELECT like_count FROM posts WHERE id = $1`

	var likeCount int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &likeCount, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("post not found: %w", err)
		}
		return 0, fmt.Errorf("failed to get like count: %w", err)
	}

	return likeCount, nil
}

// Delete removes the post row
func (r *postgresRepository) Delete(ctx context.Context, postID int64) (bool, error) {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// WithTransaction executes a function within a database transaction
func (r *postgresRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return postgres.WithTransaction(ctx, r.client, fn)
}

// buildFindQuery constructs a SQL query with WHERE clause based on filter criteria
func (r *postgresRepository) buildFindQuery(filter models.PostFilter, limit, offset int) (string, []interface{}) {
	query := `
		SELECT id, title, content, user_id, industry_id, like_count, created_at
		FROM posts
		WHERE 1=1`

	var args []interface{}
	argIndex := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}

	if filter.IndustryID != nil {
		query += fmt.Sprintf(" AND industry_id = $%d", argIndex)
		args = append(args, *filter.IndustryID)
		argIndex++
	}

	if filter.SearchText != nil && *filter.SearchText != "" {
		searchPattern := "%" + *filter.SearchText + "%"
		query += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", argIndex, argIndex)
		args = append(args, searchPattern)
		argIndex++
	}

	query += " ORDER BY created_at DESC, id DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	return query, args
}

// buildCountQuery constructs a COUNT query with WHERE clause based on filter criteria
func (r *postgresRepository) buildCountQuery(filter models.PostFilter) (string, []interface{}) {
	query := "SELECT COUNT(*) FROM posts WHERE 1=1"

	var args []interface{}
	argIndex := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}

	if filter.IndustryID != nil {
		query += fmt.Sprintf(" AND industry_id = $%d", argIndex)
		args = append(args, *filter.IndustryID)
		argIndex++
	}

	if filter.SearchText != nil && *filter.SearchText != "" {
		searchPattern := "%" + *filter.SearchText + "%"
		query += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", argIndex, argIndex)
		args = append(args, searchPattern)
		argIndex++
	}

	return query, args
}
