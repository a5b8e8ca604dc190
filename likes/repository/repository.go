// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
)

// LikeRepository defines the interface for like-specific database operations.
// The likes table carries a unique (post_id, user_id) constraint; Insert and
// Delete report through their boolean return whether a row actually changed,
// which is what makes the toggle race-free.
type LikeRepository interface {
	// Insert adds a like row. Returns false when the like already existed
	// (the insert was a conflict no-op).
	Insert(ctx context.Context, postID, userID int64) (bool, error)

	// Delete removes a like row. Returns false when no like existed.
	Delete(ctx context.Context, postID, userID int64) (bool, error)

	// Exists reports whether a like row exists for the pair
	Exists(ctx context.Context, postID, userID int64) (bool, error)

	// DeleteByPost removes all likes for a post (cascade delete step) and
	// returns the number of removed rows
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}
