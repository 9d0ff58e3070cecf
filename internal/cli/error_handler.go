package cli

import (
	"fmt"

	"timeclock/internal/errors"
	"timeclock/internal/logging"
)

// ErrorHandler translates internal errors into user-facing messages
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle converts an error into a message fit for the terminal. System
// errors keep their detail behind the debug flag.
func (h *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed: %v\n", operation, err)
	}

	return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
}
