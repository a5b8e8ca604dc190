// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sojang/bizboard/comments/models"
	commentRepository "github.com/sojang/bizboard/comments/repository"
	postModels "github.com/sojang/bizboard/posts/models"
	postRepository "github.com/sojang/bizboard/posts/repository"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing
type MockCommentRepository struct {
	mock.Mock
}

// Ensure MockCommentRepository implements CommentRepository
var _ commentRepository.CommentRepository = (*MockCommentRepository)(nil)

// Create mocks the Create method
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

// FindByPost mocks the FindByPost method
func (m *MockCommentRepository) FindByPost(ctx context.Context, postID int64, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockCommentRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepositoryForComments is a mock implementation of PostRepository for
// testing the comment service
type MockPostRepositoryForComments struct {
	mock.Mock
}

// Ensure MockPostRepositoryForComments implements PostRepository
var _ postRepository.PostRepository = (*MockPostRepositoryForComments)(nil)

// Create mocks the Create method
func (m *MockPostRepositoryForComments) Create(ctx context.Context, post *postModels.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockPostRepositoryForComments) FindByID(ctx context.Context, id int64) (*postModels.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postModels.Post), args.Error(1)
}

// Find mocks the Find method
func (m *MockPostRepositoryForComments) Find(ctx context.Context, filter postModels.PostFilter, limit, offset int) ([]*postModels.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postModels.Post), args.Error(1)
}

// Count mocks the Count method
func (m *MockPostRepositoryForComments) Count(ctx context.Context, filter postModels.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// AdjustLikeCount mocks the AdjustLikeCount method
func (m *MockPostRepositoryForComments) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error) {
	args := m.Called(ctx, postID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// GetLikeCount mocks the GetLikeCount method
func (m *MockPostRepositoryForComments) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockPostRepositoryForComments) Delete(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockPostRepositoryForComments) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
