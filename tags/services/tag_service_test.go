// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	tagErrors "github.com/sojang/bizboard/tags/errors"
)

func TestTagService_ResolveAndLinkTags(t *testing.T) {
	ctx := context.Background()
	postID := int64(42)

	t.Run("Mix of new and existing names", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		// "누구나" already exists as tag_id=1, "음식점" is created as tag_id=7.
		// The duplicate "누구나" in the input is deduplicated before any call.
		mockRepo.On("UpsertByName", mock.Anything, "누구나").Return(int64(1), nil).Once()
		mockRepo.On("UpsertByName", mock.Anything, "음식점").Return(int64(7), nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(1)).Return(nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(7)).Return(nil).Once()

		err := service.ResolveAndLinkTags(ctx, postID, []string{"누구나", "음식점", "누구나"})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNumberOfCalls(t, "UpsertByName", 2)
		mockRepo.AssertNumberOfCalls(t, "Link", 2)
	})

	t.Run("Empty sequence is a no-op", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		err := service.ResolveAndLinkTags(ctx, postID, nil)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "UpsertByName")
		mockRepo.AssertNotCalled(t, "Link")
	})

	t.Run("Names are trimmed before resolution", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		mockRepo.On("UpsertByName", mock.Anything, "카페").Return(int64(3), nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(3)).Return(nil).Once()

		err := service.ResolveAndLinkTags(ctx, postID, []string{"  카페  "})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty tag name rejected before any database work", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		err := service.ResolveAndLinkTags(ctx, postID, []string{"카페", "   "})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, tagErrors.ErrInvalidTagName))
		mockRepo.AssertNotCalled(t, "UpsertByName")
		mockRepo.AssertNotCalled(t, "Link")
	})

	t.Run("Invalid post id rejected", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		err := service.ResolveAndLinkTags(ctx, 0, []string{"카페"})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpsertByName")
	})

	t.Run("Resolution failure aborts fail-fast", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		mockRepo.On("UpsertByName", mock.Anything, "카페").Return(int64(3), nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(3)).Return(nil).Once()
		mockRepo.On("UpsertByName", mock.Anything, "맛집").Return(int64(0), errors.New("connection reset")).Once()

		err := service.ResolveAndLinkTags(ctx, postID, []string{"카페", "맛집", "분식"})

		assert.Error(t, err)
		// The third name is never attempted once the second fails.
		mockRepo.AssertNumberOfCalls(t, "UpsertByName", 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Case-sensitive names stay distinct", func(t *testing.T) {
		mockRepo := new(MockTagRepository)
		service := NewTagService(mockRepo)

		mockRepo.On("UpsertByName", mock.Anything, "Spam").Return(int64(10), nil).Once()
		mockRepo.On("UpsertByName", mock.Anything, "spam").Return(int64(11), nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(10)).Return(nil).Once()
		mockRepo.On("Link", mock.Anything, postID, int64(11)).Return(nil).Once()

		err := service.ResolveAndLinkTags(ctx, postID, []string{"Spam", "spam"})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
