// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"
)

// Report statuses. Stored as plain strings so operators can add
// workflow states without a migration.
const (
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
	StatusRejected = "REJECTED"
)

// Report represents a user flagging a post for moderation. A user may
// report a given post at most once; the unique (post_id, user_id) pair
// enforces that in the store.
type Report struct {
	ReportID  int64     `db:"report_id" json:"report_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Reason    string    `db:"reason" json:"reason"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateReportRequest is the request body for reporting a post
type CreateReportRequest struct {
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

// UpdateReportStatusRequest is the request body for moving a report
// through the moderation workflow
type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}

// ReportsListResponse is the paginated list payload
type ReportsListResponse struct {
	Reports []*Report `json:"reports"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
}
