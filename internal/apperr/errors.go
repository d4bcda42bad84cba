// Package apperr defines the error classes the services and stores report.
// Callers match them with errors.Is; the HTTP layer maps them to status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a reference to an entity or edge that does not exist.
	// Referential-integrity failures from the relational store map here too,
	// so both storage variants surface the same client-visible class.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a payload or parameter that failed a domain rule.
	ErrValidation = errors.New("validation failed")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err belongs to the validation class.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
