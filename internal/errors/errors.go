package errors

import (
	"errors"
	"fmt"
)

// Common error types for the budget client
var (
	// Session errors
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNoRefreshToken    = errors.New("no refresh token")
	ErrSessionTerminated = errors.New("session terminated")
	ErrTokenRenewal      = errors.New("token renewal failed")
	ErrInvalidToken      = errors.New("invalid token")

	// Request errors
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidResponse = errors.New("invalid response")

	// Storage errors
	ErrUnknownStore = errors.New("unknown session store")
	ErrStorage      = errors.New("session storage error")

	// General errors
	ErrNotFound = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join combines errors, dropping nils
func Join(errs ...error) error {
	return errors.Join(errs...)
}
