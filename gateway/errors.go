package gateway

import (
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// StatusError is a backend response the gateway did not resolve: a 401 it
// gave up on, or a failed call to the renewal endpoint.
type StatusError struct {
	StatusCode int
	Body       []byte

	// Terminated is set when the session was cleared because of this error.
	Terminated bool
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "unexpected status"
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("%s (status %d): %s", text, e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("%s (status %d)", text, e.StatusCode)
}

// Payload returns the raw response body.
func (e *StatusError) Payload() []byte {
	return e.Body
}

// Is lets errors.Is(err, ErrSessionTerminated) match a terminating 401.
func (e *StatusError) Is(target error) bool {
	return e.Terminated && target == apperrors.ErrSessionTerminated
}

// IsUnauthorized returns true if err is or wraps a 401 StatusError.
func IsUnauthorized(err error) bool {
	var target *StatusError
	return apperrors.As(err, &target) && target.StatusCode == http.StatusUnauthorized
}
