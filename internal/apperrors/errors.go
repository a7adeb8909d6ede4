// Package apperrors defines the error taxonomy shared by services and
// handlers. Services wrap one of the sentinel errors with a descriptive
// message; handlers map the sentinel to an HTTP status with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced account, cart, order or product that
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an authenticated actor lacking the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict marks a request that contradicts current state: empty-cart
	// checkout, re-transition of a terminal order, stock underflow.
	ErrConflict = errors.New("conflict")
)

// NotFound returns an ErrNotFound wrapped with a formatted message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Forbidden returns an ErrForbidden wrapped with a formatted message.
func Forbidden(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrForbidden)
}

// Conflict returns an ErrConflict wrapped with a formatted message.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsForbidden reports whether err wraps ErrForbidden.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
