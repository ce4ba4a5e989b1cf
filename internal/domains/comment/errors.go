package comment

import (
	"errors"
	"fmt"
	"net/http"
)

// CommentError is the base error for the comment domain.
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

var (
	ErrCommentNotFound = &CommentError{
		Code:    "COMMENT_NOT_FOUND",
		Message: "Comment not found",
	}
	ErrInvalidAuthorName = &CommentError{
		Code:    "INVALID_COMMENT_AUTHOR",
		Message: "Comment author name is invalid or empty",
	}
	ErrInvalidContent = &CommentError{
		Code:    "INVALID_COMMENT_CONTENT",
		Message: "Comment content is invalid or empty",
	}
	ErrInvalidStatus = &CommentError{
		Code:    "INVALID_COMMENT_STATUS",
		Message: "Unknown moderation status",
	}
	ErrArticleNotFound = &CommentError{
		Code:    "COMMENT_ARTICLE_NOT_FOUND",
		Message: "Referenced article does not exist",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *CommentError {
	return &CommentError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s comment", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAuthorName),
		errors.Is(err, ErrInvalidContent),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrArticleNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
