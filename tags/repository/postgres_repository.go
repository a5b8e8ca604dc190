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

	"github.com/jmoiron/sqlx"

	"github.com/sojang/bizboard/internal/database/postgres"
)

// postgresTagRepository implements TagRepository using raw SQL queries
type postgresTagRepository struct {
	client *postgres.Client
}

// NewPostgresTagRepository creates a new PostgreSQL repository for tags
func NewPostgresTagRepository(client *postgres.Client) TagRepository {
	return &postgresTagRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresTagRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return postgres.Executor(ctx, r.client)
}

// UpsertByName resolves a tag name to its identifier, creating it when absent.
// The insert races cleanly: under a concurrent insert of the same name, ON
// CONFLICT DO NOTHING returns no row and the follow-up SELECT sees the winner.
func (r *postgresTagRepository) UpsertByName(ctx context.Context, name string) (int64, error) {
	executor := r.getExecutor(ctx)

	insertQuery := `
		INSERT INTO tags (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING tag_id
	`

	var tagID int64
	err := sqlx.GetContext(ctx, executor, &tagID, insertQuery, name)
	if err == nil {
		return tagID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to insert tag %q: %w", name, err)
	}

	// The tag already existed (or a concurrent writer just created it).
	selectQuery := `SELECT tag_id FROM tags WHERE name = $1`
	if err := sqlx.GetContext(ctx, executor, &tagID, selectQuery, name); err != nil {
		return 0, fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}

	return tagID, nil
}

// Link attaches a tag to a post
func (r *postgresTagRepository) Link(ctx context.Context, postID, tagID int64) error {
	query := `
		INSERT INTO post_tags (post_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, tag_id) DO NOTHING
	`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, postID, tagID)
	if err != nil {
		return fmt.Errorf("failed to link tag %d to post %d: %w", tagID, postID, err)
	}

	return nil
}

// NamesForPost returns the tag names linked to a post
func (r *postgresTagRepository) NamesForPost(ctx context.Context, postID int64) ([]string, error) {
	query := `
		SELECT t.name
		FROM post_tags pt
		JOIN tags t ON t.tag_id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`

	var names []string
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &names, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags for post %d: %w", postID, err)
	}

	return names, nil
}

// UnlinkByPost removes all tag links for a post
func (r *postgresTagRepository) UnlinkByPost(ctx context.Context, postID int64) (int64, error) {
	query := `DELETE FROM post_tags WHERE post_id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to unlink tags for post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
