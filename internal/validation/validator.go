package validation

import (
	"regexp"
	"strings"
)

// clockTimePattern accepts 24-hour wall-clock strings plus the "24:00"
// end-of-day sentinel. The time engine relies on this gate having run:
// it does not defend against malformed time strings itself.
var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$|^24:00$`)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsValidClockTime checks if a string is a well-formed "HH:mm" clock
// time or the "24:00" sentinel
func (v *Validator) IsValidClockTime(s string) bool {
	return clockTimePattern.MatchString(s)
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidID checks if an entity ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidBackdateLimit checks if a backdate limit is within the allowed
// range of 0 to 365 days
func (v *Validator) IsValidBackdateLimit(days int) bool {
	return days >= 0 && days <= 365
}

// IsValidMultiplier checks if a working-hour rule pay multiplier is
// within the allowed 1.0 to 3.0 range
func (v *Validator) IsValidMultiplier(m float64) bool {
	return m >= 1.0 && m <= 3.0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
