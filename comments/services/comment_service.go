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

	commentErrors "github.com/sojang/bizboard/comments/errors"
	"github.com/sojang/bizboard/comments/models"
	commentRepository "github.com/sojang/bizboard/comments/repository"
	"github.com/sojang/bizboard/comments/validation"
	postRepository "github.com/sojang/bizboard/posts/repository"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	// CreateComment validates and stores a new comment; the post must exist
	CreateComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)

	// ListByPost returns comments for a post, oldest first
	ListByPost(ctx context.Context, postID int64, limit, offset int) (*models.CommentsListResponse, error)
}

// commentService implements the CommentService interface
type commentService struct {
	commentRepo commentRepository.CommentRepository
	postRepo    postRepository.PostRepository
}

// NewCommentService creates a new instance of the comment service
func NewCommentService(commentRepo commentRepository.CommentRepository, postRepo postRepository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates and stores a new comment
func (s *commentService) CreateComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := validation.ValidateCreateCommentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", commentErrors.ErrInvalidCommentData, err)
	}

	if _, err := s.postRepo.FindByID(ctx, req.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", commentErrors.ErrPostNotFound, req.PostID)
		}
		return nil, commentErrors.WrapPersistenceError(err)
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, commentErrors.WrapPersistenceError(err)
	}

	return comment, nil
}

// ListByPost returns comments for a post
func (s *commentService) ListByPost(ctx context.Context, postID int64, limit, offset int) (*models.CommentsListResponse, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("%w: post_id is required", commentErrors.ErrInvalidCommentData)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	comments, err := s.commentRepo.FindByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, commentErrors.WrapPersistenceError(err)
	}

	return &models.CommentsListResponse{
		Comments: comments,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
