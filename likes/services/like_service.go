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

	"github.com/sojang/bizboard/internal/cache"
	"github.com/sojang/bizboard/internal/pkg/log"
	likeErrors "github.com/sojang/bizboard/likes/errors"
	"github.com/sojang/bizboard/likes/models"
	likeRepository "github.com/sojang/bizboard/likes/repository"
	postRepository "github.com/sojang/bizboard/posts/repository"
)

// LikeService defines the interface for like operations
type LikeService interface {
	// ToggleLike flips the user's like state on a post and keeps the
	// denormalized counter consistent, atomically
	ToggleLike(ctx context.Context, userID, postID int64) (*models.ToggleResult, error)
}

// likeService implements the LikeService interface
type likeService struct {
	likeRepo    likeRepository.LikeRepository
	postRepo    postRepository.PostRepository
	cache       cache.Cache
	cachePrefix string
}

// NewLikeService creates a new instance of the like service
func NewLikeService(likeRepo likeRepository.LikeRepository, postRepo postRepository.PostRepository, c cache.Cache, cachePrefix string) LikeService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &likeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		cache:       c,
		cachePrefix: cachePrefix,
	}
}

// ToggleLike flips a user's like on a post.
// The insert-or-ignore on the unique (post_id, user_id) pair decides the
// direction of the toggle, and the counter moves by the same delta in the same
// transaction, so the counter can never drift from the rows it summarizes.
func (s *likeService) ToggleLike(ctx context.Context, userID, postID int64) (*models.ToggleResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be a positive identifier", likeErrors.ErrInvalidLikeData)
	}
	if postID <= 0 {
		return nil, fmt.Errorf("%w: post_id must be a positive identifier", likeErrors.ErrInvalidLikeData)
	}

	var result models.ToggleResult

	err := s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := s.likeRepo.Insert(txCtx, postID, userID)
		if err != nil {
			return likeErrors.WrapPersistenceError(err)
		}

		if inserted {
			likeCount, err := s.postRepo.AdjustLikeCount(txCtx, postID, 1)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("%w: post %d", likeErrors.ErrPostNotFound, postID)
				}
				return likeErrors.WrapPersistenceError(err)
			}
			result = models.ToggleResult{Liked: true, LikeCount: likeCount}
			return nil
		}

		// The like already existed: this call toggles it off.
		deleted, err := s.likeRepo.Delete(txCtx, postID, userID)
		if err != nil {
			return likeErrors.WrapPersistenceError(err)
		}
		if !deleted {
			// A concurrent toggle removed the row between our insert attempt
			// and the delete. The net state is "not liked"; leave the counter
			// alone, the concurrent transaction already adjusted it.
			likeCount, err := s.postRepo.GetLikeCount(txCtx, postID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("%w: post %d", likeErrors.ErrPostNotFound, postID)
				}
				return likeErrors.WrapPersistenceError(err)
			}
			result = models.ToggleResult{Liked: false, LikeCount: likeCount}
			return nil
		}

		likeCount, err := s.postRepo.AdjustLikeCount(txCtx, postID, -1)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: post %d", likeErrors.ErrPostNotFound, postID)
			}
			return likeErrors.WrapPersistenceError(err)
		}

		result = models.ToggleResult{Liked: false, LikeCount: likeCount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best effort: a stale cached post only misreports like_count until TTL.
	if err := s.cache.Delete(ctx, cache.PostKey(s.cachePrefix, postID)); err != nil {
		log.WarnWithContext(ctx, "failed to invalidate post cache after toggle: %v", err)
	}

	return &result, nil
}
