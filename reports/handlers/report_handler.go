// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sojang/bizboard/reports/errors"
	"github.com/sojang/bizboard/reports/models"
	"github.com/sojang/bizboard/reports/services"
)

// ReportHandler handles all report-related HTTP requests
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler with injected dependencies
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles reporting a post
// Endpoint: POST /reports
// Body: {"post_id": 42, "user_id": 7, "reason": "..."}
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var req models.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	report, err := h.reportService.CreateReport(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(report)
}

// UpdateStatus handles moving a report through the moderation workflow
// Endpoint: PUT /reports/:reportId/status
// Body: {"status": "RESOLVED"}
func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	reportID, err := c.ParamsInt("reportId")
	if err != nil || reportID <= 0 {
		return errors.HandleInvalidRequestError(c, "Invalid report id")
	}

	var req models.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := h.reportService.UpdateStatus(c.Context(), int64(reportID), req.Status); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Report status updated",
	})
}

// ListReports handles listing reports by status
// Endpoint: GET /reports?status=PENDING&limit=20&offset=0
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", models.StatusPending)
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	resp, err := h.reportService.ListByStatus(c.Context(), status, limit, offset)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(resp)
}
