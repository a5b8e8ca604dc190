// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/comments/errors"
	"github.com/sojang/bizboard/comments/models"
	"github.com/sojang/bizboard/comments/services"
)

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment handles comment creation
// Endpoint: POST /comments
// Body: {"post_id": 42, "user_id": 7, "content": "..."}
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	comment, err := h.commentService.CreateComment(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(comment)
}

// ListComments handles listing comments for a post
// Endpoint: GET /comments/post/:postId?limit=20&offset=0
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return errors.HandleInvalidRequestError(c, "Invalid post id")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	resp, err := h.commentService.ListByPost(c.Context(), int64(postID), limit, offset)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(resp)
}
