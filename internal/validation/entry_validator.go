package validation

import (
	"time"
)

// EntryValidator provides validation for time entry submissions. It is
// the upstream gate the time engine's preconditions refer to: clock
// strings that pass here are safe to hand to the engine unparsed.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new time entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryForCreation validates the raw fields of a new time entry
func (ev *EntryValidator) ValidateEntryForCreation(employeeID, projectID int64, date time.Time, startTime, endTime string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(employeeID) {
		validationError.AddInvalidValueError("employee_id", employeeID, "must be a positive integer")
	}

	if !ev.validator.IsValidID(projectID) {
		validationError.AddInvalidValueError("project_id", projectID, "must be a positive integer")
	}

	if date.IsZero() {
		validationError.AddRequiredError("date")
	}

	ev.validateClockTime(validationError, "start_time", startTime)
	ev.validateClockTime(validationError, "end_time", endTime)

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryForUpdate validates the fields of a time entry update.
// Start and end times are optional but must be supplied together.
func (ev *EntryValidator) ValidateEntryForUpdate(entryID int64, startTime, endTime string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(entryID) {
		validationError.AddInvalidValueError("entry_id", entryID, "must be a positive integer")
	}

	if (startTime == "") != (endTime == "") {
		validationError.AddInvalidValueError("time_range", startTime+"-"+endTime, "start and end time must be provided together")
	}

	if startTime != "" {
		ev.validateClockTime(validationError, "start_time", startTime)
	}
	if endTime != "" {
		ev.validateClockTime(validationError, "end_time", endTime)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates a time entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

func (ev *EntryValidator) validateClockTime(ve *ValidationError, field, value string) {
	if value == "" {
		ve.AddRequiredError(field)
		return
	}
	if !ev.validator.IsValidClockTime(value) {
		ve.AddInvalidFormatError(field, value, "HH:mm or 24:00")
	}
}
