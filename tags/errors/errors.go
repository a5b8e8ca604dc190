package errors

import (
	"errors"
)

// Tag service specific errors. Tags have no HTTP surface of their own; these
// sentinels propagate through the post-save flow and are mapped there.
var (
	ErrInvalidTagName    = errors.New("invalid tag name")
	ErrDatabaseOperation = errors.New("database operation failed")
)
