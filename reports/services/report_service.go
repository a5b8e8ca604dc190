// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	postRepository "github.com/sojang/bizboard/posts/repository"
	reportErrors "github.com/sojang/bizboard/reports/errors"
	"github.com/sojang/bizboard/reports/models"
	reportRepository "github.com/sojang/bizboard/reports/repository"
	"github.com/sojang/bizboard/reports/validation"
)

// ReportService defines the interface for report operations
type ReportService interface {
	// CreateReport files a report against a post. A user may report a
	// given post only once; a second attempt fails with ErrAlreadyReported.
	CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.Report, error)

	// UpdateStatus moves a report through the moderation workflow
	UpdateStatus(ctx context.Context, reportID int64, status string) error

	// ListByStatus returns reports in a given status, newest first
	ListByStatus(ctx context.Context, status string, limit, offset int) (*models.ReportsListResponse, error)
}

// reportService implements the ReportService interface
type reportService struct {
	reportRepo reportRepository.ReportRepository
	postRepo   postRepository.PostRepository
}

// NewReportService creates a new instance of the report service
func NewReportService(reportRepo reportRepository.ReportRepository, postRepo postRepository.PostRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		postRepo:   postRepo,
	}
}

// CreateReport files a report against a post
func (s *reportService) CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.Report, error) {
	if err := validation.ValidateCreateReportRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", reportErrors.ErrInvalidReportData, err)
	}

	if _, err := s.postRepo.FindByID(ctx, req.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", reportErrors.ErrPostNotFound, req.PostID)
		}
		return nil, reportErrors.WrapPersistenceError(err)
	}

	report := &models.Report{
		PostID: req.PostID,
		UserID: req.UserID,
		Reason: req.Reason,
		Status: models.StatusPending,
	}

	created, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, reportErrors.WrapPersistenceError(err)
	}
	if !created {
		return nil, fmt.Errorf("%w: post %d, user %d",
			reportErrors.ErrAlreadyReported, req.PostID, req.UserID)
	}

	return report, nil
}

// UpdateStatus moves a report through the moderation workflow
func (s *reportService) UpdateStatus(ctx context.Context, reportID int64, status string) error {
	if reportID <= 0 {
		return fmt.Errorf("%w: report_id is required", reportErrors.ErrInvalidReportData)
	}
	if err := validation.ValidateStatus(status); err != nil {
		return fmt.Errorf("%w: %v", reportErrors.ErrInvalidReportData, err)
	}

	found, err := s.reportRepo.UpdateStatus(ctx, reportID, status)
	if err != nil {
		return reportErrors.WrapPersistenceError(err)
	}
	if !found {
		return fmt.Errorf("%w: report %d", reportErrors.ErrReportNotFound, reportID)
	}

	return nil
}

// ListByStatus returns reports in a given status
func (s *reportService) ListByStatus(ctx context.Context, status string, limit, offset int) (*models.ReportsListResponse, error) {
	if err := validation.ValidateStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %v", reportErrors.ErrInvalidReportData, err)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	reports, err := s.reportRepo.FindByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, reportErrors.WrapPersistenceError(err)
	}

	return &models.ReportsListResponse{
		Reports: reports,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
