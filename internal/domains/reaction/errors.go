package reaction

import (
	"errors"
	"fmt"
	"net/http"
)

// ReactionError is the base error for the reaction domain.
type ReactionError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReactionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ReactionError) Unwrap() error {
	return e.Err
}

var (
	ErrUnknownKind = &ReactionError{
		Code:    "UNKNOWN_REACTION_KIND",
		Message: "Unknown reaction kind",
	}
	ErrArticleNotFound = &ReactionError{
		Code:    "REACTION_ARTICLE_NOT_FOUND",
		Message: "Referenced article does not exist",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *ReactionError {
	return &ReactionError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s reaction", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, ErrArticleNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
