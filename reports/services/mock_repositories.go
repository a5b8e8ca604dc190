// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	postModels "github.com/sojang/bizboard/posts/models"
	postRepository "github.com/sojang/bizboard/posts/repository"
	"github.com/sojang/bizboard/reports/models"
	reportRepository "github.com/sojang/bizboard/reports/repository"
)

// MockReportRepository is a mock implementation of ReportRepository for testing
type MockReportRepository struct {
	mock.Mock
}

// Ensure MockReportRepository implements ReportRepository
var _ reportRepository.ReportRepository = (*MockReportRepository)(nil)

// Create mocks the Create method
func (m *MockReportRepository) Create(ctx context.Context, report *models.Report) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}

// UpdateStatus mocks the UpdateStatus method
func (m *MockReportRepository) UpdateStatus(ctx context.Context, reportID int64, status string) (bool, error) {
	args := m.Called(ctx, reportID, status)
	return args.Bool(0), args.Error(1)
}

// FindByStatus mocks the FindByStatus method
func (m *MockReportRepository) FindByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Report, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Report), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockReportRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepositoryForReports is a mock implementation of PostRepository for
// testing the report service
type MockPostRepositoryForReports struct {
	mock.Mock
}

// Ensure MockPostRepositoryForReports implements PostRepository
var _ postRepository.PostRepository = (*MockPostRepositoryForReports)(nil)

// Create mocks the Create method
func (m *MockPostRepositoryForReports) Create(ctx context.Context, post *postModels.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockPostRepositoryForReports) FindByID(ctx context.Context, id int64) (*postModels.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postModels.Post), args.Error(1)
}

// Find mocks the Find method
func (m *MockPostRepositoryForReports) Find(ctx context.Context, filter postModels.PostFilter, limit, offset int) ([]*postModels.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postModels.Post), args.Error(1)
}

// Count mocks the Count method
func (m *MockPostRepositoryForReports) Count(ctx context.Context, filter postModels.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// AdjustLikeCount mocks the AdjustLikeCount method
func (m *MockPostRepositoryForReports) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error) {
	args := m.Called(ctx, postID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// GetLikeCount mocks the GetLikeCount method
func (m *MockPostRepositoryForReports) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockPostRepositoryForReports) Delete(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockPostRepositoryForReports) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
