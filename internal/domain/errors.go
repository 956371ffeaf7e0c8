// Package domain contains the error kinds shared by the domain layer.
// Every failure raised by a constructor, setter, converter or comparator
// wraps exactly one of the kinds below, so callers can branch on the kind
// with errors.Is without knowing which component produced the error.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrInvalidArgument is returned when an argument has the wrong kind,
	// e.g. a dimension that is not a finite number.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValidation is returned when a value violates a domain constraint,
	// e.g. a non-positive dimension or an unknown unit symbol.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedShape is returned when a value handed to the comparator
	// exposes no recognized metric.
	ErrUnsupportedShape = errors.New("shape exposes no recognized metric")
)

// FieldError describes a single rejected field.
// It unwraps to both the specific cause and the error kind.
type FieldError struct {
	// Field is the name of the rejected field (e.g. "width").
	Field string

	// Value is the rejected value.
	Value any

	// Err is the specific cause (e.g. entity.ErrNonPositiveDimension).
	Err error

	// Kind is one of ErrInvalidArgument or ErrValidation.
	Kind error
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the cause and the kind to errors.Is and errors.As.
func (e *FieldError) Unwrap() []error {
	return []error{e.Err, e.Kind}
}

// NewValidationError creates a FieldError of kind ErrValidation.
//
// Parameters:
//   - field: name of the rejected field
//   - value: the rejected value
//   - cause: the specific sentinel error
//
// Returns:
//   - error: the wrapped field error
func NewValidationError(field string, value any, cause error) error {
	return &FieldError{Field: field, Value: value, Err: cause, Kind: ErrValidation}
}

// NewArgumentError creates a FieldError of kind ErrInvalidArgument.
//
// Parameters:
//   - field: name of the rejected field
//   - value: the rejected value
//   - cause: the specific sentinel error
//
// Returns:
//   - error: the wrapped field error
func NewArgumentError(field string, value any, cause error) error {
	return &FieldError{Field: field, Value: value, Err: cause, Kind: ErrInvalidArgument}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsArgumentError reports whether err is an invalid-argument failure.
func IsArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
