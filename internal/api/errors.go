package api

import (
	"errors"
	"fmt"
)

// ErrNetwork marks failures where no HTTP response was received
// (connection refused, DNS, timeout, cancelled context).
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response from the backend.
// Message holds the JSON "message" field when the body carried one.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// MessageOr returns the server-provided message carried by err, or fallback
// when err is not an APIError or the server sent no message.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsNetwork reports whether err is a transport failure
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
