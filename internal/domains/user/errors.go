package user

import (
	"errors"
	"fmt"
	"net/http"
)

// UserError is the base error for the user domain.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

var (
	ErrUserNotFound = &UserError{
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrInvalidName = &UserError{
		Code:    "INVALID_USER_NAME",
		Message: "User name is invalid or empty",
	}
	ErrInvalidEmail = &UserError{
		Code:    "INVALID_USER_EMAIL",
		Message: "Email address is invalid",
	}
	ErrWeakPassword = &UserError{
		Code:    "WEAK_PASSWORD",
		Message: "Password must be at least 8 characters",
	}
	ErrEmailTaken = &UserError{
		Code:    "EMAIL_TAKEN",
		Message: "An account with this email already exists",
	}
	ErrInvalidCredentials = &UserError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Email or password is incorrect",
	}
	ErrAccountDisabled = &UserError{
		Code:    "ACCOUNT_DISABLED",
		Message: "This account has been disabled",
	}
	ErrInvalidRole = &UserError{
		Code:    "INVALID_ROLE",
		Message: "Unknown user role",
	}
	ErrInvalidRefreshToken = &UserError{
		Code:    "INVALID_REFRESH_TOKEN",
		Message: "Refresh token is invalid or expired",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *UserError {
	return &UserError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s user", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
