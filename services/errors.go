package services

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Handlers map these to 404 responses.
var (
	ErrRoomNotFound     = errors.New("chat room not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrClientNotFound   = errors.New("client profile not found")
	ErrAgentNotFound    = errors.New("agent profile not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// ValidationError reports a missing or malformed required field. Handlers map it to a
// 400 response carrying the message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrAgentNotFound) ||
		errors.Is(err, ErrPropertyNotFound) ||
		errors.Is(err, ErrFavoriteNotFound)
}
