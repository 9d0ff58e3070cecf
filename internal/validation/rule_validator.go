package validation

// RuleValidator provides validation for working-hour rule definitions.
// Note that it deliberately does not check rules against each other:
// wrapping windows are first-class, and overlapping or gapped rule sets
// are accepted as given.
type RuleValidator struct {
	validator *Validator
}

// NewRuleValidator creates a new working-hour rule validator
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{
		validator: NewValidator(),
	}
}

// ValidateRuleForCreation validates the fields of a new working-hour rule
func (rv *RuleValidator) ValidateRuleForCreation(name, startTime, endTime string, multiplier float64) error {
	validationError := NewValidationError()

	if !rv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("name")
	} else if !rv.validator.IsValidStringLength(name, 1, 100) {
		validationError.AddInvalidValueError("name", name, "must be at most 100 characters")
	}

	if !rv.validator.IsValidClockTime(startTime) {
		validationError.AddInvalidFormatError("start_time", startTime, "HH:mm or 24:00")
	}

	if !rv.validator.IsValidClockTime(endTime) {
		validationError.AddInvalidFormatError("end_time", endTime, "HH:mm or 24:00")
	}

	if !rv.validator.IsValidMultiplier(multiplier) {
		validationError.AddInvalidRangeError("multiplier", multiplier, "must be between 1.0 and 3.0")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
