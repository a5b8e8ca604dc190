// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// Tag represents a free-text label attached to posts. Names are unique and
// matched byte-for-byte; tags are created lazily on first use and never
// deleted, even when no post links to them anymore.
type Tag struct {
	TagID int64  `db:"tag_id" json:"tag_id"`
	Name  string `db:"name" json:"name"`
}

// PostTag links a post to a tag
type PostTag struct {
	PostID int64 `db:"post_id" json:"post_id"`
	TagID  int64 `db:"tag_id" json:"tag_id"`
}
