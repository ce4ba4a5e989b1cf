package settings

import (
	"errors"
	"fmt"
	"net/http"
)

// SettingsError is the base error for the settings domain.
type SettingsError struct {
	Code    string
	Message string
	Err     error
}

func (e *SettingsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidKey = &SettingsError{
		Code:    "INVALID_SETTING_KEY",
		Message: "Setting key is invalid or empty",
	}
	ErrInvalidGroup = &SettingsError{
		Code:    "INVALID_SETTING_GROUP",
		Message: "Unknown setting group",
	}
)

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *SettingsError {
	return &SettingsError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("Failed to %s settings", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidKey), errors.Is(err, ErrInvalidGroup):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
