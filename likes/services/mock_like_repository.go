// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	likeRepository "github.com/sojang/bizboard/likes/repository"
)

// MockLikeRepository is a mock implementation of LikeRepository for testing
type MockLikeRepository struct {
	mock.Mock
}

// Ensure MockLikeRepository implements LikeRepository
var _ likeRepository.LikeRepository = (*MockLikeRepository)(nil)

// Insert mocks the Insert method
func (m *MockLikeRepository) Insert(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockLikeRepository) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockLikeRepository) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

// DeleteByPost mocks the DeleteByPost method
func (m *MockLikeRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
