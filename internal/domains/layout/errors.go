package layout

import (
	"errors"
	"fmt"
	"net/http"
)

// LayoutError is the base error for the layout domain.
type LayoutError struct {
	Code    string
	Message string
	Err     error
}

func (e *LayoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

var (
	ErrLayoutNotFound = &LayoutError{
		Code:    "LAYOUT_NOT_FOUND",
		Message: "Layout not found",
	}
	ErrNoActiveLayout = &LayoutError{
		Code:    "NO_ACTIVE_LAYOUT",
		Message: "No layout is currently active",
	}
	ErrInvalidName = &LayoutError{
		Code:    "INVALID_LAYOUT_NAME",
		Message: "Layout name is invalid or empty",
	}
	ErrInvalidBlockType = &LayoutError{
		Code:    "INVALID_BLOCK_TYPE",
		Message: "Unknown layout block type",
	}
	ErrInvalidOp = &LayoutError{
		Code:    "INVALID_EDITOR_OP",
		Message: "Unknown editor operation",
	}
)

// NewPersistenceError wraps a storage failure on the layout store.
func NewPersistenceError(op string, err error) *LayoutError {
	return &LayoutError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s layout", op),
		Err:     err,
	}
}

// NewFetchError wraps an article-provider failure. Fetch errors are
// logged and degraded to sample data, never surfaced to readers.
func NewFetchError(err error) *LayoutError {
	return &LayoutError{
		Code:    "FETCH_ERROR",
		Message: "Failed to fetch articles",
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrLayoutNotFound), errors.Is(err, ErrNoActiveLayout):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidBlockType),
		errors.Is(err, ErrInvalidOp):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
