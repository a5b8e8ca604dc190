// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	commentRepository "github.com/sojang/bizboard/comments/repository"
	"github.com/sojang/bizboard/internal/cache"
	"github.com/sojang/bizboard/internal/pkg/log"
	likeRepository "github.com/sojang/bizboard/likes/repository"
	postErrors "github.com/sojang/bizboard/posts/errors"
	"github.com/sojang/bizboard/posts/models"
	postRepository "github.com/sojang/bizboard/posts/repository"
	"github.com/sojang/bizboard/posts/validation"
	reportRepository "github.com/sojang/bizboard/reports/repository"
	tagErrors "github.com/sojang/bizboard/tags/errors"
	tagServices "github.com/sojang/bizboard/tags/services"
)

// PostService defines the interface for post operations
type PostService interface {
	// SavePost creates a post and links its tags in one transaction
	SavePost(ctx context.Context, req *models.SavePostRequest) (*models.Post, error)

	// GetPost retrieves a single post with its tag names
	GetPost(ctx context.Context, postID int64) (*models.Post, error)

	// ListPosts retrieves posts matching the filter, newest first
	ListPosts(ctx context.Context, filter models.PostFilter, limit, offset int) (*models.PostsListResponse, error)

	// DeletePost removes a post and everything hanging off it in one
	// transaction. Returns whether a post row actually existed.
	DeletePost(ctx context.Context, postID int64) (bool, error)
}

// postService implements the PostService interface
type postService struct {
	postRepo    postRepository.PostRepository
	likeRepo    likeRepository.LikeRepository
	commentRepo commentRepository.CommentRepository
	reportRepo  reportRepository.ReportRepository
	tagService  tagServices.TagService
	cache       cache.Cache
	cachePrefix string
	cacheTTL    time.Duration
}

// NewPostService creates a new instance of the post service
func NewPostService(
	postRepo postRepository.PostRepository,
	likeRepo likeRepository.LikeRepository,
	commentRepo commentRepository.CommentRepository,
	reportRepo reportRepository.ReportRepository,
	tagService tagServices.TagService,
	c cache.Cache,
	cachePrefix string,
	cacheTTL time.Duration,
) PostService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &postService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
		tagService:  tagService,
		cache:       c,
		cachePrefix: cachePrefix,
		cacheTTL:    cacheTTL,
	}
}

// SavePost creates a post and links its tags. The post row and every tag link
// land in the same transaction, so a post never appears without the tags it
// was submitted with.
func (s *postService) SavePost(ctx context.Context, req *models.SavePostRequest) (*models.Post, error) {
	if err := validation.ValidateSavePostRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", postErrors.ErrInvalidPostData, err)
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		UserID:     req.UserID,
		IndustryID: req.IndustryID,
	}

	err := s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		postID, err := s.postRepo.Create(txCtx, post)
		if err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		if err := s.tagService.ResolveAndLinkTags(txCtx, postID, req.Tags); err != nil {
			if errors.Is(err, tagErrors.ErrInvalidTagName) {
				return fmt.Errorf("%w: %v", postErrors.ErrInvalidPostData, err)
			}
			return postErrors.WrapPersistenceError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	tags, err := s.tagService.NamesForPost(ctx, post.ID)
	if err != nil {
		// The post is committed; reads will recover the tags.
		log.WarnWithContext(ctx, "failed to load tags for new post %d: %v", post.ID, err)
		tags = []string{}
	}
	post.Tags = tags

	return post, nil
}

// GetPost retrieves a single post, trying the cache first
func (s *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("%w: post_id must be a positive identifier", postErrors.ErrInvalidPostData)
	}

	key := cache.PostKey(s.cachePrefix, postID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached models.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		// Unreadable entry: drop it and fall through to the store.
		if err := s.cache.Delete(ctx, key); err != nil {
			log.WarnWithContext(ctx, "failed to drop corrupt cache entry for post %d: %v", postID, err)
		}
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", postErrors.ErrPostNotFound, postID)
		}
		return nil, postErrors.WrapPersistenceError(err)
	}

	tags, err := s.tagService.NamesForPost(ctx, postID)
	if err != nil {
		return nil, postErrors.WrapPersistenceError(err)
	}
	post.Tags = tags

	if data, err := json.Marshal(post); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			log.WarnWithContext(ctx, "failed to cache post %d: %v", postID, err)
		}
	}

	return post, nil
}

// ListPosts retrieves posts matching the filter with pagination
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter, limit, offset int) (*models.PostsListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.Find(ctx, filter, limit, offset)
	if err != nil {
		return nil, postErrors.WrapPersistenceError(err)
	}

	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, postErrors.WrapPersistenceError(err)
	}

	for _, post := range posts {
		tags, err := s.tagService.NamesForPost(ctx, post.ID)
		if err != nil {
			return nil, postErrors.WrapPersistenceError(err)
		}
		post.Tags = tags
	}

	return &models.PostsListResponse{
		Posts:      posts,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeletePost removes a post together with its reports, comments, tag links and
// likes in a single transaction. Either everything goes or nothing does; a
// failure on any child leaves the post fully intact. Deleting a post that does
// not exist is a no-op and not an error, so retried deletes stay safe.
func (s *postService) DeletePost(ctx context.Context, postID int64) (bool, error) {
	if postID <= 0 {
		return false, fmt.Errorf("%w: post_id must be a positive identifier", postErrors.ErrInvalidPostData)
	}

	var existed bool

	err := s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.reportRepo.DeleteByPost(txCtx, postID); err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		if _, err := s.commentRepo.DeleteByPost(txCtx, postID); err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		if _, err := s.tagService.UnlinkByPost(txCtx, postID); err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		if _, err := s.likeRepo.DeleteByPost(txCtx, postID); err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		deleted, err := s.postRepo.Delete(txCtx, postID)
		if err != nil {
			return postErrors.WrapPersistenceError(err)
		}

		existed = deleted
		return nil
	})
	if err != nil {
		return false, err
	}

	// Best effort: a stale cached post vanishes at TTL anyway.
	if err := s.cache.Delete(ctx, cache.PostKey(s.cachePrefix, postID)); err != nil {
		log.WarnWithContext(ctx, "failed to invalidate post cache after delete: %v", err)
	}

	return existed, nil
}
