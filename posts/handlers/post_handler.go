// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/posts/errors"
	"github.com/sojang/bizboard/posts/models"
	"github.com/sojang/bizboard/posts/services"
)

// PostHandler handles all post-related HTTP requests
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler with injected dependencies
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// SavePost handles post creation
// Endpoint: POST /posts
// Body: {"title": "...", "content": "...", "user_id": 7, "tags": ["..."]}
func (h *PostHandler) SavePost(c *fiber.Ctx) error {
	var req models.SavePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.postService.SavePost(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(models.SavePostResponse{
		Status:  "success",
		Message: "Post saved successfully",
		PostID:  post.ID,
	})
}

// GetPost handles fetching a single post
// Endpoint: GET /posts/:postId
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return errors.HandleInvalidRequestError(c, "Invalid post id")
	}

	post, err := h.postService.GetPost(c.Context(), int64(postID))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(post)
}

// ListPosts handles listing posts with optional filters
// Endpoint: GET /posts?user_id=7&industry_id=3&search=text&limit=20&offset=0
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	var filter models.PostFilter

	if userID := int64(c.QueryInt("user_id", 0)); userID > 0 {
		filter.UserID = &userID
	}
	if industryID := int64(c.QueryInt("industry_id", 0)); industryID > 0 {
		filter.IndustryID = &industryID
	}
	if search := c.Query("search"); search != "" {
		filter.SearchText = &search
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	resp, err := h.postService.ListPosts(c.Context(), filter, limit, offset)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeletePost handles post deletion with all dependent records
// Endpoint: DELETE /posts/:postId
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return errors.HandleInvalidRequestError(c, "Invalid post id")
	}

	return h.deletePost(c, int64(postID))
}

// DeletePostCompat handles post deletion for clients that send the id in the
// request body instead of the path
// Endpoint: POST /posts/delete
// Body: {"post_id": 42}
func (h *PostHandler) DeletePostCompat(c *fiber.Ctx) error {
	var req struct {
		PostID int64 `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}
	if req.PostID <= 0 {
		return errors.HandleInvalidRequestError(c, "Invalid post id")
	}

	return h.deletePost(c, req.PostID)
}

func (h *PostHandler) deletePost(c *fiber.Ctx, postID int64) error {
	existed, err := h.postService.DeletePost(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Post was already deleted"
	if existed {
		message = "Post deleted successfully"
	}

	return c.Status(http.StatusOK).JSON(models.DeletePostResponse{
		Success: true,
		Message: message,
	})
}
