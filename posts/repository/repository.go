// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/sojang/bizboard/posts/models"
)

// PostRepository defines the interface for post-specific database operations
type PostRepository interface {
	// Create inserts a new post and returns the generated identifier
	Create(ctx context.Context, post *models.Post) (int64, error)

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id int64) (*models.Post, error)

	// Find retrieves posts matching the filter criteria with pagination,
	// newest first
	Find(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, error)

	// Count returns the number of posts matching the filter criteria
	Count(ctx context.Context, filter models.PostFilter) (int64, error)

	// AdjustLikeCount applies a relative delta to the denormalized like
	// counter and returns the new value. The counter is never read-then-
	// written in application code. Returns ErrPostNotFound via sql semantics
	// (zero rows) when the post does not exist.
	AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error)

	// GetLikeCount reads the current counter value
	GetLikeCount(ctx context.Context, postID int64) (int64, error)

	// Delete removes the post row. Returns false when no row existed.
	Delete(ctx context.Context, postID int64) (bool, error)

	// WithTransaction executes fn inside a database transaction shared by
	// every repository call made with the context fn receives
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
