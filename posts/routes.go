// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package posts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/posts/handlers"
)

// PostsHandlers holds all the handlers this router needs
type PostsHandlers struct {
	PostHandler *handlers.PostHandler
}

// RegisterRoutes is the single entry point for setting up posts routes
func RegisterRoutes(app *fiber.App, h *PostsHandlers) {
	group := app.Group("/posts")

	// Create endpoint: POST /posts
	group.Post("/", h.PostHandler.SavePost)

	// List endpoint: GET /posts
	group.Get("/", h.PostHandler.ListPosts)

	// Body-based delete kept for older clients: POST /posts/delete
	group.Post("/delete", h.PostHandler.DeletePostCompat)

	// Read endpoint: GET /posts/:postId
	group.Get("/:postId", h.PostHandler.GetPost)

	// Delete endpoint: DELETE /posts/:postId
	group.Delete("/:postId", h.PostHandler.DeletePost)
}
