// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/sojang/bizboard/reports/models"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	// Create inserts a report. It returns false when the same user has
	// already reported the same post; the unique pair constraint decides,
	// so concurrent duplicates collapse to a single row.
	Create(ctx context.Context, report *models.Report) (bool, error)

	// UpdateStatus moves a report to a new workflow status. It returns
	// false when no report with that id exists.
	UpdateStatus(ctx context.Context, reportID int64, status string) (bool, error)

	// FindByStatus retrieves reports in a given status, newest first
	FindByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Report, error)

	// DeleteByPost removes all reports for a post and returns how many
	// rows were removed
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}
