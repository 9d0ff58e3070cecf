package domain

// Project represents a billable project in the domain model.
type Project struct {
	ID        int64
	CompanyID int64
	Name      string
	Code      string
	Color     string
	Active    bool
}

// NewProject creates a new active Project for the given company.
func NewProject(companyID int64, name string) Project {
	return Project{
		CompanyID: companyID,
		Name:      name,
		Active:    true,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.CompanyID > 0 && p.Name != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
