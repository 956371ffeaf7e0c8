package dto

import (
	"errors"

	"github.com/hapkiduki/geoshapes/internal/domain"
)

// Error codes reported in ErrorReport.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnsupportedShape = "UNSUPPORTED_SHAPE"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorReport is the JSON form of a failed command.
type ErrorReport struct {
	// Success is always false; it mirrors the success field of other reports.
	Success bool `json:"success" yaml:"success"`

	// Error contains the error details.
	Error ErrorDetail `json:"error" yaml:"error"`
}

// ErrorDetail describes a failure.
type ErrorDetail struct {
	// Code is one of the Code* constants.
	Code string `json:"code" yaml:"code"`

	// Message is a human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Field is the offending field for field-level failures.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// NewErrorReport creates an ErrorReport for err.
func NewErrorReport(err error) ErrorReport {
	detail := ErrorDetail{
		Code:    ErrorCode(err),
		Message: err.Error(),
	}

	var fe *domain.FieldError
	if errors.As(err, &fe) {
		detail.Field = fe.Field
	}

	return ErrorReport{Error: detail}
}

// ErrorCode maps an error to its report code.
func ErrorCode(err error) string {
	switch {
	case domain.IsArgumentError(err):
		return CodeInvalidArgument
	case domain.IsValidationError(err):
		return CodeValidation
	case errors.Is(err, domain.ErrUnsupportedShape):
		return CodeUnsupportedShape
	default:
		return CodeInternal
	}
}
