// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"
)

// Comment represents a comment on a post. Comments are owned by their post
// and disappear with it; this core never deletes them individually.
type Comment struct {
	ID        int64     `db:"id" json:"comment_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateCommentRequest is the request body for creating a comment
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

// CommentsListResponse is the paginated list payload
type CommentsListResponse struct {
	Comments []*Comment `json:"comments"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}
