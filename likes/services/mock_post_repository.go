// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sojang/bizboard/posts/models"
	postRepository "github.com/sojang/bizboard/posts/repository"
)

// MockPostRepositoryForLikes is a mock implementation of PostRepository for
// testing the like service
type MockPostRepositoryForLikes struct {
	mock.Mock
}

// Ensure MockPostRepositoryForLikes implements PostRepository
var _ postRepository.PostRepository = (*MockPostRepositoryForLikes)(nil)

// Create mocks the Create method
func (m *MockPostRepositoryForLikes) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockPostRepositoryForLikes) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// Find mocks the Find method
func (m *MockPostRepositoryForLikes) Find(ctx context.Context, filter models.PostFilter, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

// Count mocks the Count method
func (m *MockPostRepositoryForLikes) Count(ctx context.Context, filter models.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// AdjustLikeCount mocks the AdjustLikeCount method
func (m *MockPostRepositoryForLikes) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int64, error) {
	args := m.Called(ctx, postID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// GetLikeCount mocks the GetLikeCount method
func (m *MockPostRepositoryForLikes) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockPostRepositoryForLikes) Delete(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockPostRepositoryForLikes) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
