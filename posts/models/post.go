// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"
)

// Post represents a community board post. LikeCount is denormalized: it always
// equals the number of likes rows referencing the post, maintained inside the
// same transaction as every like change.
type Post struct {
	ID         int64     `db:"id" json:"post_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	UserID     int64     `db:"user_id" json:"user_id"`
	IndustryID *int64    `db:"industry_id" json:"industry_id,omitempty"`
	LikeCount  int64     `db:"like_count" json:"like_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// Tags is populated from post_tags on reads; not a column.
	Tags []string `db:"-" json:"tags"`
}

// SavePostRequest is the request body for creating a post
type SavePostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	UserID     int64    `json:"user_id"`
	IndustryID *int64   `json:"industry_id,omitempty"`
	Tags       []string `json:"tags"`
}

// SavePostResponse preserves the upstream client's save-post response shape
type SavePostResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	PostID  int64  `json:"post_id,omitempty"`
}

// DeletePostResponse preserves the upstream client's delete response shape
type DeletePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PostFilter carries the optional criteria for listing posts
type PostFilter struct {
	UserID     *int64
	IndustryID *int64
	SearchText *string
}

// PostsListResponse is the paginated list payload
type PostsListResponse struct {
	Posts      []*Post `json:"posts"`
	TotalCount int64   `json:"total_count"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}
