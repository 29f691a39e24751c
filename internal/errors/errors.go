package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username taken")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username/password")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrFeedbackNotFound is returned when a feedback entry is not found.
	ErrFeedbackNotFound = errors.New("feedback not found")
	// ErrUnauthorized is returned when the session user may not act on a resource.
	ErrUnauthorized = errors.New("unauthorized")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation and credential
// failures are handled inside the handlers, so only resource and authorization
// errors reach this mapping; anything else is a server fault.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "you must be logged in as the owner to do that")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrFeedbackNotFound):
		return NewHTTPError(http.StatusNotFound, ErrFeedbackNotFound.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
