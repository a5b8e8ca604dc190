// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/comments/handlers"
)

// CommentsHandlers holds all the handlers this router needs
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comments routes
func RegisterRoutes(app *fiber.App, h *CommentsHandlers) {
	group := app.Group("/comments")

	// Create endpoint: POST /comments
	group.Post("/", h.CommentHandler.CreateComment)

	// List endpoint: GET /comments/post/:postId
	group.Get("/post/:postId", h.CommentHandler.ListComments)
}
