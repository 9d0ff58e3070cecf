package sqlite

import "time"

// Employee is the database shape of an employee row.
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

// Project is the database shape of a project row.
type Project struct {
	ID        int64
	CompanyID int64
	Name      string
	Code      string
	Color     string
	Active    bool
}

// WorkingHourRule is the database shape of a working-hour rule row.
type WorkingHourRule struct {
	ID         int64
	CompanyID  int64
	Name       string
	StartTime  string
	EndTime    string
	Multiplier float64
	Active     bool
}

// TimeEntry is the database shape of a time entry parent row. Clock
// times live on the segments, not the parent.
type TimeEntry struct {
	ID         int64
	CompanyID  int64
	EmployeeID int64
	ProjectID  int64
	Date       time.Time
	Notes      string
	FullDay    bool
	Status     string
}

// EntrySegment is the database shape of one single-day slice of an
// entry, with its precomputed minute totals.
type EntrySegment struct {
	ID              int64
	EntryID         int64
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	DayMinutes      int
	EveningMinutes  int
	NightMinutes    int
}

// SegmentWithStatus joins a segment with its parent entry's status so
// callers can filter rejected entries without a second query.
type SegmentWithStatus struct {
	EntrySegment
	EntryStatus string
}

// Settings is the database shape of a company settings row.
type Settings struct {
	CompanyID             int64
	ApprovalType          string
	DefaultBackdateDays   int
	StandardWorkingHours  int
	AutoLockAfterApproval bool
}

// AuditRecord is the database shape of an audit trail row.
type AuditRecord struct {
	ID         string
	CompanyID  int64
	UserID     int64
	Action     string
	EntityType string
	EntityID   string
	OldValues  string
	NewValues  string
	CreatedAt  time.Time
}

// EntrySearchOptions contains all possible time entry search parameters
type EntrySearchOptions struct {
	CompanyID  int64
	EmployeeID *int64
	ProjectID  *int64
	Status     *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
