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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	likeErrors "github.com/sojang/bizboard/likes/errors"
)

func TestLikeService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	postID := int64(42)
	userID := int64(7)

	withTx := func(mockPostRepo *MockPostRepositoryForLikes) {
		mockPostRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(nil).
			Run(func(args mock.Arguments) {
				fn := args.Get(1).(func(context.Context) error)
				fn(ctx)
			})
	}

	t.Run("Toggle on - like row created, counter incremented", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		// Post 42 sits at like_count=3; user 7 has not liked it yet.
		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(true, nil)
		mockPostRepo.On("AdjustLikeCount", mock.Anything, postID, 1).Return(int64(4), nil)
		withTx(mockPostRepo)

		result, err := service.ToggleLike(ctx, userID, postID)

		assert.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, int64(4), result.LikeCount)
		mockLikeRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Toggle off - like row removed, counter decremented", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(false, nil)
		mockLikeRepo.On("Delete", mock.Anything, postID, userID).Return(true, nil)
		mockPostRepo.On("AdjustLikeCount", mock.Anything, postID, -1).Return(int64(3), nil)
		withTx(mockPostRepo)

		result, err := service.ToggleLike(ctx, userID, postID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, int64(3), result.LikeCount)
		mockLikeRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Toggling twice nets to the starting counter", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(true, nil).Once()
		mockPostRepo.On("AdjustLikeCount", mock.Anything, postID, 1).Return(int64(4), nil).Once()
		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(false, nil).Once()
		mockLikeRepo.On("Delete", mock.Anything, postID, userID).Return(true, nil).Once()
		mockPostRepo.On("AdjustLikeCount", mock.Anything, postID, -1).Return(int64(3), nil).Once()
		mockPostRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(nil).
			Twice().
			Run(func(args mock.Arguments) {
				fn := args.Get(1).(func(context.Context) error)
				fn(ctx)
			})

		first, err := service.ToggleLike(ctx, userID, postID)
		assert.NoError(t, err)
		assert.True(t, first.Liked)

		second, err := service.ToggleLike(ctx, userID, postID)
		assert.NoError(t, err)
		assert.False(t, second.Liked)
		assert.Equal(t, int64(3), second.LikeCount)

		mockLikeRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Invalid user id rejected before any transaction", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		result, err := service.ToggleLike(ctx, 0, postID)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, likeErrors.ErrInvalidLikeData))
		mockPostRepo.AssertNotCalled(t, "WithTransaction")
	})

	t.Run("Invalid post id rejected before any transaction", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		result, err := service.ToggleLike(ctx, userID, -1)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, likeErrors.ErrInvalidLikeData))
		mockPostRepo.AssertNotCalled(t, "WithTransaction")
	})

	t.Run("Toggling a nonexistent post surfaces not-found", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(true, nil)
		mockPostRepo.On("AdjustLikeCount", mock.Anything, postID, 1).
			Return(int64(0), fmt.Errorf("post not found: %w", sql.ErrNoRows))
		// The transaction callback fails, so WithTransaction surfaces its error.
		mockPostRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(fmt.Errorf("%w: post 42", likeErrors.ErrPostNotFound)).
			Run(func(args mock.Arguments) {
				fn := args.Get(1).(func(context.Context) error)
				fn(ctx)
			})

		result, err := service.ToggleLike(ctx, userID, postID)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, likeErrors.ErrPostNotFound))
	})

	t.Run("Concurrent toggle already removed the like", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(false, nil)
		mockLikeRepo.On("Delete", mock.Anything, postID, userID).Return(false, nil)
		mockPostRepo.On("GetLikeCount", mock.Anything, postID).Return(int64(3), nil)
		withTx(mockPostRepo)

		result, err := service.ToggleLike(ctx, userID, postID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, int64(3), result.LikeCount)
		// Counter untouched: the concurrent transaction already adjusted it.
		mockPostRepo.AssertNotCalled(t, "AdjustLikeCount")
	})

	t.Run("Persistence failure propagates", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockPostRepo := new(MockPostRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockPostRepo, nil, "test:")

		mockLikeRepo.On("Insert", mock.Anything, postID, userID).Return(false, errors.New("connection reset"))
		mockPostRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(likeErrors.WrapPersistenceError(errors.New("connection reset"))).
			Run(func(args mock.Arguments) {
				fn := args.Get(1).(func(context.Context) error)
				fn(ctx)
			})

		result, err := service.ToggleLike(ctx, userID, postID)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, likeErrors.ErrDatabaseOperation))
	})
}
