package category

import (
	"errors"
	"fmt"
	"net/http"
)

// CategoryError is the base error for the category domain.
type CategoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

var (
	ErrCategoryNotFound = &CategoryError{
		Code:    "CATEGORY_NOT_FOUND",
		Message: "Category not found",
	}
	ErrInvalidCategoryName = &CategoryError{
		Code:    "INVALID_CATEGORY_NAME",
		Message: "Category name is invalid or empty",
	}
	ErrDuplicateSlug = &CategoryError{
		Code:    "CATEGORY_SLUG_ALREADY_EXISTS",
		Message: "Category slug already exists",
	}
	ErrCategoryInUse = &CategoryError{
		Code:    "CATEGORY_IN_USE",
		Message: "Cannot delete category with associated articles",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *CategoryError {
	return &CategoryError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s category", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCategoryName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
