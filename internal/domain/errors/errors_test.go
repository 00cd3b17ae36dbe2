package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewValidationError("INVALID_INPUT", "bad input"),
			expected: "bad input",
		},
		{
			name:     "with cause",
			err:      NewParseError("MALFORMED_TAG", "bad tag").WithCause(fmt.Errorf("offset 12")),
			expected: "bad tag: offset 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Is(t *testing.T) {
	err := NewMissingFieldError("freq")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrInvalidRecord))
	assert.True(t, errors.Is(fmt.Errorf("label: %w", err), ErrMissingField))
	assert.Equal(t, "freq", err.Details["field"])
}

func TestAppError_New(t *testing.T) {
	err := ErrTruncatedRecord.New("field CALL wants 4 bytes")

	assert.ErrorIs(t, err, ErrTruncatedRecord)
	assert.Equal(t, ErrorTypeParse, err.Type)
	assert.Equal(t, "field CALL wants 4 bytes", err.Error())

	err.WithDetails(map[string]interface{}{"offset": 3})
	assert.Nil(t, ErrTruncatedRecord.Details)
	assert.Equal(t, "Truncated ADIF record", ErrTruncatedRecord.Message)
}

func TestIsType(t *testing.T) {
	wrapped := Wrap(NewParseError("TRUNCATED_RECORD", "short"), "reading log")

	assert.True(t, IsType(wrapped, ErrorTypeParse))
	assert.False(t, IsType(wrapped, ErrorTypeValidation))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeParse))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	cause := fmt.Errorf("disk full")
	err := WrapWithCode(cause, "WRITE_FAILED", "writing labels")
	assert.Equal(t, "WRITE_FAILED", err.Code)
	assert.Equal(t, ErrorTypeInternal, err.Type)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "WRITE_FAILED", CodeOf(err))
	assert.Equal(t, "", CodeOf(cause))
}
