// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"
)

// Like represents a user's endorsement of a post. The (post_id, user_id) pair
// is unique: presence of the row means "liked".
type Like struct {
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ToggleLikeRequest is the request body for toggling a like
type ToggleLikeRequest struct {
	UserID int64 `json:"user_id"`
	PostID int64 `json:"post_id"`
}

// ToggleLikeResponse preserves the upstream client's toggle response shape
type ToggleLikeResponse struct {
	Status    string `json:"status"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
	Message   string `json:"message"`
}

// ToggleResult is the service-level outcome of a toggle
type ToggleResult struct {
	Liked     bool
	LikeCount int64
}
