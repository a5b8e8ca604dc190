// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/reports/handlers"
)

// ReportsHandlers holds all the handlers this router needs
type ReportsHandlers struct {
	ReportHandler *handlers.ReportHandler
}

// RegisterRoutes is the single entry point for setting up reports routes
func RegisterRoutes(app *fiber.App, h *ReportsHandlers) {
	group := app.Group("/reports")

	// Create endpoint: POST /reports
	group.Post("/", h.ReportHandler.CreateReport)

	// Status endpoint: PUT /reports/:reportId/status
	group.Put("/:reportId/status", h.ReportHandler.UpdateStatus)

	// List endpoint: GET /reports?status=PENDING
	group.Get("/", h.ReportHandler.ListReports)
}
