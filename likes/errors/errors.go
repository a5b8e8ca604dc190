package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Like service specific errors
var (
	ErrInvalidLikeData   = errors.New("invalid like data")
	ErrPostNotFound      = errors.New("post not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodePostNotFound      = "POST_NOT_FOUND"
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
	case errors.Is(err, ErrInvalidLikeData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid like data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodePostNotFound,
			Message: "Post not found",
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
