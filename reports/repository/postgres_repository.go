// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sojang/bizboard/internal/database/postgres"
	"github.com/sojang/bizboard/reports/models"
)

// postgresReportRepository implements ReportRepository using raw SQL queries
type postgresReportRepository struct {
	client *postgres.Client
}

// NewPostgresReportRepository creates a new PostgreSQL repository for reports
func NewPostgresReportRepository(client *postgres.Client) ReportRepository {
	return &postgresReportRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresReportRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return postgres.Executor(ctx, r.client)
}

// Create inserts a report unless the (post_id, user_id) pair already exists
func (r *postgresReportRepository) Create(ctx context.Context, report *models.Report) (bool, error) {
	if report.Status == "" {
		report.Status = models.StatusPending
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO reports (post_id, user_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (post_id, user_id) DO NOTHING
		RETURNING report_id
	`

	rows, err := r.getExecutor(ctx).QueryxContext(ctx, query,
		report.PostID, report.UserID, report.Reason, report.Status, report.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert report: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		// Conflict path: the pair already exists
		return false, rows.Err()
	}

	if err := rows.Scan(&report.ReportID); err != nil {
		return false, fmt.Errorf("failed to scan report id: %w", err)
	}

	return true, nil
}

// UpdateStatus moves a report to a new workflow status
func (r *postgresReportRepository) UpdateStatus(ctx context.Context, reportID int64, status string) (bool, error) {
	query := `UPDATE reports SET status = $1 WHERE report_id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, status, reportID)
	if err != nil {
		return false, fmt.Errorf("failed to update report status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// FindByStatus retrieves reports in a given status with pagination
func (r *postgresReportRepository) FindByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Report, error) {
	query := `
		SELECT report_id, post_id, user_id, reason, status, created_at
		FROM reports
		WHERE status = $1
		ORDER BY created_at DESC, report_id DESC
		LIMIT $2 OFFSET $3
	`

	var reports []models.Report
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &reports, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find reports by status: %w", err)
	}

	result := make([]*models.Report, len(reports))
	for i := range reports {
		result[i] = &reports[i]
	}

	return result, nil
}

// DeleteByPost removes all reports for a post
func (r *postgresReportRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	query := `DELETE FROM reports WHERE post_id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reports for post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
