package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Report service specific errors
var (
	ErrInvalidReportData = errors.New("invalid report data")
	ErrPostNotFound      = errors.New("post not found")
	ErrReportNotFound    = errors.New("report not found")
	ErrAlreadyReported   = errors.New("post already reported by this user")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodePostNotFound      = "POST_NOT_FOUND"
	CodeReportNotFound    = "REPORT_NOT_FOUND"
	CodeAlreadyReported   = "ALREADY_REPORTED"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeDatabaseOperation = "DATABASE_OPERATION_FAILED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// WrapPersistenceError attaches the underlying cause to the persistence sentinel
func WrapPersistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidReportData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid report data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAlreadyReported):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeAlreadyReported,
			Message: "Post already reported by this user",
			Details: err.Error(),
		})
	case errors.Is(err, ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodePostNotFound,
			Message: "Post not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrReportNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeReportNotFound,
			Message: "Report not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseOperation,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}
