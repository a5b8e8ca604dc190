// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/sojang/bizboard/comments/models"
)

// CommentRepository defines the interface for comment-specific database operations
type CommentRepository interface {
	// Create inserts a new comment and returns the generated identifier
	Create(ctx context.Context, comment *models.Comment) (int64, error)

	// FindByPost retrieves comments for a post with pagination, oldest first
	FindByPost(ctx context.Context, postID int64, limit, offset int) ([]*models.Comment, error)

	// DeleteByPost removes all comments for a post (cascade delete step) and
	// returns the number of removed rows
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}
