package article

import (
	"errors"
	"fmt"
	"net/http"
)

// ArticleError is the base error for the article domain.
type ArticleError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArticleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

var (
	ErrArticleNotFound = &ArticleError{
		Code:    "ARTICLE_NOT_FOUND",
		Message: "Article not found",
	}
	ErrInvalidTitle = &ArticleError{
		Code:    "INVALID_ARTICLE_TITLE",
		Message: "Article title is invalid or empty",
	}
	ErrInvalidContent = &ArticleError{
		Code:    "INVALID_ARTICLE_CONTENT",
		Message: "Article content is empty",
	}
	ErrDuplicateSlug = &ArticleError{
		Code:    "ARTICLE_SLUG_ALREADY_EXISTS",
		Message: "Article slug already exists",
	}
	ErrCategoryNotFound = &ArticleError{
		Code:    "ARTICLE_CATEGORY_NOT_FOUND",
		Message: "Referenced category does not exist",
	}
	ErrInvalidImage = &ArticleError{
		Code:    "INVALID_ARTICLE_IMAGE",
		Message: "Image is missing or has an unsupported content type",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *ArticleError {
	return &ArticleError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s article", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrInvalidContent),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrInvalidImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
