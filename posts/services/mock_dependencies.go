// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	commentModels "github.com/sojang/bizboard/comments/models"
	commentRepository "github.com/sojang/bizboard/comments/repository"
	likeRepository "github.com/sojang/bizboard/likes/repository"
	"github.com/sojang/bizboard/posts/models"
	postRepository "github.com/sojang/bizboard/posts/repository"
	reportModels "github.com/sojang/bizboard/reports/models"
	reportRepository "github.com/sojang/bizboard/reports/repository"
	tagServices "github.com/sojang/bizboard/tags/services"
)

// MockPostRepository is a mock implementation of PostRepository for testing
type MockPostRepository struct {
	mock.Mock
}

// Ensure MockPostRepository implements PostRepository
var _ postRepository.PostRepository = (*MockPostRepository)(nil)

// Create mocks the Create method
func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	id := args.Get(0).(int64)
	if id > 0 {
		post.ID = id
	}
	return id, args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// Find mocks the Find method
func (m *MockPostRepository) Find(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

// Count mocks the Count method
func (m *MockPostRepository) Count(ctx context.Context, filter models.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// AdjustLikeCount mocks the AdjustLikeCount method
func (m *MockPostRepository) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error) {
	args := m.Called(ctx, postID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// GetLikeCount mocks the GetLikeCount method
func (m *MockPostRepository) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockPostRepository) Delete(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method by invoking the callback
func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockLikeRepositoryForPosts is a mock implementation of LikeRepository for
// testing the post service
type MockLikeRepositoryForPosts struct {
	mock.Mock
}

// Ensure MockLikeRepositoryForPosts implements LikeRepository
var _ likeRepository.LikeRepository = (*MockLikeRepositoryForPosts)(nil)

// Insert mocks the Insert method
func (m *MockLikeRepositoryForPosts) Insert(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockLikeRepositoryForPosts) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockLikeRepositoryForPosts) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockLikeRepositoryForPosts) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepositoryForPosts is a mock implementation of CommentRepository
// for testing the post service
type MockCommentRepositoryForPosts struct {
	mock.Mock
}

// Ensure MockCommentRepositoryForPosts implements CommentRepository
var _ commentRepository.CommentRepository = (*MockCommentRepositoryForPosts)(nil)

// Create mocks the Create method
func (m *MockCommentRepositoryForPosts) Create(ctx context.Context, comment *commentModels.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

// FindByPost mocks the FindByPost method
func (m *MockCommentRepositoryForPosts) FindByPost(ctx context.Context, postID int64, limit, offset int) ([]*commentModels.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*commentModels.Comment), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockCommentRepositoryForPosts) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportRepositoryForPosts is a mock implementation of ReportRepository
// for testing the post service
type MockReportRepositoryForPosts struct {
	mock.Mock
}

// Ensure MockReportRepositoryForPosts implements ReportRepository
var _ reportRepository.ReportRepository = (*MockReportRepositoryForPosts)(nil)

// Create mocks the Create method
func (m *MockReportRepositoryForPosts) Create(ctx context.Context, report *reportModels.Report) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}

// UpdateStatus mocks the UpdateStatus method
func (m *MockReportRepositoryForPosts) UpdateStatus(ctx context.Context, reportID int64, status string) (bool, error) {
	args := m.Called(ctx, reportID, status)
	return args.Bool(0), args.Error(1)
}

// FindByStatus mocks the FindByStatus method
func (m *MockReportRepositoryForPosts) FindByStatus(ctx context.Context, status string, limit, offset int) ([]*reportModels.Report, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reportModels.Report), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockReportRepositoryForPosts) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTagService is a mock implementation of TagService for testing
type MockTagService struct {
	mock.Mock
}

// Ensure MockTagService implements TagService
var _ tagServices.TagService = (*MockTagService)(nil)

// ResolveAndLinkTags mocks the ResolveAndLinkTags method
func (m *MockTagService) ResolveAndLinkTags(ctx context.Context, postID int64, names []string) error {
	args := m.Called(ctx, postID, names)
	return args.Error(0)
}

// NamesForPost mocks the NamesForPost method
func (m *MockTagService) NamesForPost(ctx context.Context, postID int64) ([]string, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// UnlinkByPost mocks the UnlinkByPost method
func (m *MockTagService) UnlinkByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
