// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sojang/bizboard/tags/repository"
)

// MockTagRepository is a mock implementation of TagRepository for testing
type MockTagRepository struct {
	mock.Mock
}

// Ensure MockTagRepository implements TagRepository
var _ repository.TagRepository = (*MockTagRepository)(nil)

// UpsertByName mocks the UpsertByName method
func (m *MockTagRepository) UpsertByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// Link mocks the Link method
func (m *MockTagRepository) Link(ctx context.Context, postID, tagID int64) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}

// NamesForPost mocks the NamesForPost method
func (m *MockTagRepository) NamesForPost(ctx context.Context, postID int64) ([]string, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// UnlinkByPost mocks the UnlinkByPost method
func (m *MockTagRepository) UnlinkByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
