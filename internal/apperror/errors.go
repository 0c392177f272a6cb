// Package apperror holds the error taxonomy shared by the stand's use cases.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input. The operation changed nothing.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an operation on a missing id.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientPayment means received < final total; the checkout stays open.
	ErrInsufficientPayment = errors.New("insufficient payment")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
