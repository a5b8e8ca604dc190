// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	postModels "github.com/sojang/bizboard/posts/models"
	reportErrors "github.com/sojang/bizboard/reports/errors"
	"github.com/sojang/bizboard/reports/models"
)

func TestReportService_CreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("files a pending report against an existing post", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		postRepo.On("FindByID", ctx, int64(42)).Return(&postModels.Post{ID: 42}, nil)
		reportRepo.On("Create", ctx, mock.MatchedBy(func(r *models.Report) bool {
			return r.PostID == 42 && r.UserID == 7 && r.Status == models.StatusPending
		})).Return(true, nil)

		report, err := service.CreateReport(ctx, &models.CreateReportRequest{
			PostID: 42,
			UserID: 7,
			Reason: "spam",
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, report.Status)
		reportRepo.AssertExpectations(t)
		postRepo.AssertExpectations(t)
	})

	t.Run("rejects a second report from the same user", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		postRepo.On("FindByID", ctx, int64(42)).Return(&postModels.Post{ID: 42}, nil)
		reportRepo.On("Create", ctx, mock.Anything).Return(false, nil)

		_, err := service.CreateReport(ctx, &models.CreateReportRequest{
			PostID: 42,
			UserID: 7,
			Reason: "spam again",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrAlreadyReported)
	})

	t.Run("rejects a blank reason before touching the store", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		_, err := service.CreateReport(ctx, &models.CreateReportRequest{
			PostID: 42,
			UserID: 7,
			Reason: "  ",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrInvalidReportData)
		postRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for a missing post", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		postRepo.On("FindByID", ctx, int64(999)).Return(nil, sql.ErrNoRows)

		_, err := service.CreateReport(ctx, &models.CreateReportRequest{
			PostID: 999,
			UserID: 7,
			Reason: "spam",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrPostNotFound)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wraps persistence failures", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		postRepo.On("FindByID", ctx, int64(42)).Return(&postModels.Post{ID: 42}, nil)
		reportRepo.On("Create", ctx, mock.Anything).
			Return(false, errors.New("connection refused"))

		_, err := service.CreateReport(ctx, &models.CreateReportRequest{
			PostID: 42,
			UserID: 7,
			Reason: "spam",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrDatabaseOperation)
	})
}

func TestReportService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a pending report", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		reportRepo.On("UpdateStatus", ctx, int64(5), models.StatusResolved).Return(true, nil)

		err := service.UpdateStatus(ctx, 5, models.StatusResolved)

		require.NoError(t, err)
		reportRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		err := service.UpdateStatus(ctx, 5, "ESCALATED")

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrInvalidReportData)
		reportRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns not found for a missing report", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		reportRepo.On("UpdateStatus", ctx, int64(999), models.StatusRejected).Return(false, nil)

		err := service.UpdateStatus(ctx, 999, models.StatusRejected)

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrReportNotFound)
	})
}

func TestReportService_ListByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("lists pending reports with the default page size", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		stored := []*models.Report{
			{ReportID: 2, PostID: 42, UserID: 9, Status: models.StatusPending},
			{ReportID: 1, PostID: 42, UserID: 7, Status: models.StatusPending},
		}
		reportRepo.On("FindByStatus", ctx, models.StatusPending, 20, 0).Return(stored, nil)

		resp, err := service.ListByStatus(ctx, models.StatusPending, 0, 0)

		require.NoError(t, err)
		assert.Len(t, resp.Reports, 2)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		postRepo := new(MockPostRepositoryForReports)
		service := NewReportService(reportRepo, postRepo)

		_, err := service.ListByStatus(ctx, "open", 20, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, reportErrors.ErrInvalidReportData)
		reportRepo.AssertNotCalled(t, "FindByStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
