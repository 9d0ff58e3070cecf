package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewConflictError("time entry overlaps with existing entry on 2025-03-10")
		assert.Equal(t, "conflict: time entry overlaps with existing entry on 2025-03-10", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := NewDatabaseError("create segment", cause)
		assert.Contains(t, err.Error(), "database:")
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := NewDatabaseError("query entries", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	t.Run("direct app error", func(t *testing.T) {
		err := NewNotFoundError("employee", "42")
		appErr, ok := AsAppError(err)

		assert.True(t, ok)
		assert.True(t, appErr.IsType(ErrorTypeNotFound))
	})

	t.Run("wrapped app error", func(t *testing.T) {
		wrapped := fmt.Errorf("creating entry: %w", NewValidationError("bad time", nil))
		appErr, ok := AsAppError(wrapped)

		assert.True(t, ok)
		assert.True(t, appErr.IsType(ErrorTypeValidation))
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(stderrors.New("plain"))
		assert.False(t, ok)
	})
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "conflict message passes through",
			err:      NewConflictError("overlap detected"),
			expected: "overlap detected",
		},
		{
			name:     "rate limited message passes through",
			err:      NewRateLimitedError("10.0.0.1"),
			expected: "too many attempts, try again later",
		},
		{
			name:     "database errors are masked",
			err:      NewDatabaseError("insert", stderrors.New("constraint failed")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "plain errors pass through",
			err:      stderrors.New("something else"),
			expected: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewConflictError("overlap")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(NewRateLimitedError("ip")))
	assert.True(t, ShouldLogError(stderrors.New("unknown")))
}

func TestWithContext(t *testing.T) {
	err := NewConflictError("overlap").WithContext("date", "2025-03-10")

	value, ok := err.GetContext("date")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-10", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}
