package domain

// Employee represents a tracked employee in the domain model.
// This is a pure domain model without database-specific concerns.
type Employee struct {
	ID                int64
	CompanyID         int64
	FirstName         string
	LastName          string
	Email             string
	Department        string
	Position          string
	BackdateLimitDays int
	Active            bool
}

// DefaultBackdateLimitDays is applied when an employee has no explicit
// look-back window configured.
const DefaultBackdateLimitDays = 7

// NewEmployee creates a new active Employee for the given company.
func NewEmployee(companyID int64, firstName, lastName, email string) Employee {
	return Employee{
		CompanyID:         companyID,
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		BackdateLimitDays: DefaultBackdateLimitDays,
		Active:            true,
	}
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsValid checks if the employee has valid data.
func (e Employee) IsValid() bool {
	if e.CompanyID <= 0 {
		return false
	}
	if e.FirstName == "" || e.LastName == "" || e.Email == "" {
		return false
	}
	return e.BackdateLimitDays >= 0
}
