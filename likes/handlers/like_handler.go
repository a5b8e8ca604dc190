// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/likes/errors"
	"github.com/sojang/bizboard/likes/models"
	"github.com/sojang/bizboard/likes/services"
)

// LikeHandler handles all like-related HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new LikeHandler with injected dependencies
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleLike handles like toggling
// Endpoint: POST /likes/toggle
// Body: {"user_id": 7, "post_id": 42}
func (h *LikeHandler) ToggleLike(c *fiber.Ctx) error {
	var req models.ToggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	result, err := h.likeService.ToggleLike(c.Context(), req.UserID, req.PostID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Post unliked"
	if result.Liked {
		message = "Post liked"
	}

	return c.Status(http.StatusOK).JSON(models.ToggleLikeResponse{
		Status:    "success",
		Liked:     result.Liked,
		LikeCount: result.LikeCount,
		Message:   message,
	})
}
