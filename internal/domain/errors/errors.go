package errors

import (
	"errors"
	"fmt"
)

// Error types for the labeler domains
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same type and code, so freshly built
// errors compare equal to the predefined sentinels below.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// New returns a fresh error with e's type and code and the given message.
// Use it to raise one of the predefined errors without mutating it.
func (e *AppError) New(message string) *AppError {
	return &AppError{
		Type:    e.Type,
		Code:    e.Code,
		Message: message,
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Error constructors
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewParseError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Code:    code,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
}

// NewMissingFieldError reports a contact field that was never set but is
// needed by the requested operation.
func NewMissingFieldError(field string) *AppError {
	return ErrMissingField.New(fmt.Sprintf("%s is not set", field)).
		WithDetails(map[string]interface{}{"field": field})
}

// Predefined common errors
var (
	ErrMissingField    = NewValidationError("MISSING_FIELD", "Required field is not set")
	ErrInvalidRecord   = NewValidationError("INVALID_RECORD", "Invalid contact record")
	ErrInvalidFreq     = NewValidationError("INVALID_FREQUENCY", "Invalid frequency")
	ErrMalformedTag    = NewParseError("MALFORMED_TAG", "Malformed ADIF tag")
	ErrTruncatedRecord = NewParseError("TRUNCATED_RECORD", "Truncated ADIF record")
	ErrInvalidConfig   = NewValidationError("INVALID_CONFIG", "Invalid configuration")
)

// Wrap wraps an error with a message using fmt.Errorf with %w
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapWithCode wraps an error and returns an internal AppError with the given code
func WrapWithCode(err error, code, message string) *AppError {
	appErr := NewInternalError(message).WithCause(err)
	appErr.Code = code
	return appErr
}

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// CodeOf extracts the error code, or "" when err is not an AppError
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
