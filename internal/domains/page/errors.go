package page

import (
	"errors"
	"fmt"
	"net/http"
)

// PageError is the base error for the page domain.
type PageError struct {
	Code    string
	Message string
	Err     error
}

func (e *PageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

var (
	ErrPageNotFound = &PageError{
		Code:    "PAGE_NOT_FOUND",
		Message: "Page not found",
	}
	ErrInvalidTitle = &PageError{
		Code:    "INVALID_PAGE_TITLE",
		Message: "Page title is invalid or empty",
	}
	ErrInvalidStatus = &PageError{
		Code:    "INVALID_PAGE_STATUS",
		Message: "Unknown page status",
	}
	ErrDuplicateSlug = &PageError{
		Code:    "DUPLICATE_PAGE_SLUG",
		Message: "A page with this slug already exists",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *PageError {
	return &PageError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s page", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
