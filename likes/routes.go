// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package likes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/likes/handlers"
)

// LikesHandlers holds all the handlers this router needs
type LikesHandlers struct {
	LikeHandler *handlers.LikeHandler
}

// RegisterRoutes is the single entry point for setting up likes routes
func RegisterRoutes(app *fiber.App, h *LikesHandlers) {
	group := app.Group("/likes")

	// Toggle endpoint: POST /likes/toggle
	group.Post("/toggle", h.LikeHandler.ToggleLike)
}
