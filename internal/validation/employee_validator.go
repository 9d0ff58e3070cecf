package validation

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmployeeValidator provides validation for employee records
type EmployeeValidator struct {
	validator *Validator
}

// NewEmployeeValidator creates a new employee validator
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{
		validator: NewValidator(),
	}
}

// ValidateEmployeeForCreation validates the fields of a new employee
func (ev *EmployeeValidator) ValidateEmployeeForCreation(firstName, lastName, email string, backdateLimitDays int) error {
	validationError := NewValidationError()

	if !ev.validator.IsNonEmptyString(firstName) {
		validationError.AddRequiredError("first_name")
	}

	if !ev.validator.IsNonEmptyString(lastName) {
		validationError.AddRequiredError("last_name")
	}

	if !emailPattern.MatchString(email) {
		validationError.AddInvalidFormatError("email", email, "name@example.com")
	}

	if !ev.validator.IsValidBackdateLimit(backdateLimitDays) {
		validationError.AddInvalidRangeError("backdate_limit_days", backdateLimitDays, "must be between 0 and 365")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEmployeeID validates an employee ID
func (ev *EmployeeValidator) ValidateEmployeeID(id int64) error {
	if !ev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("employee_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
