// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
)

// TagRepository defines the interface for tag-specific database operations.
// All write methods honor a transaction travelling in the context, so the
// whole tag resolution participates in the caller's post-save transaction.
type TagRepository interface {
	// UpsertByName resolves a tag name to its identifier, creating the tag
	// when it does not exist yet. The unique constraint on the name column
	// makes this safe under concurrent writers: insert-or-ignore, then select.
	UpsertByName(ctx context.Context, name string) (int64, error)

	// Link attaches a tag to a post. Linking an already-linked pair is a no-op.
	Link(ctx context.Context, postID, tagID int64) error

	// NamesForPost returns the tag names linked to a post
	NamesForPost(ctx context.Context, postID int64) ([]string, error)

	// UnlinkByPost removes all post_tags rows for a post and returns the
	// number of removed links. The tags themselves survive.
	UnlinkByPost(ctx context.Context, postID int64) (int64, error)
}
