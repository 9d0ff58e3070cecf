package services

import (
	"context"
	"time"

	"timeclock/internal/domain"
)

// CreateEntryParams carries everything needed to submit a work interval.
type CreateEntryParams struct {
	CompanyID  int64
	EmployeeID int64
	ProjectID  int64
	Date       time.Time
	StartTime  string
	EndTime    string
	Notes      string
	FullDay    bool

	// ActorID is who performed the action, for the audit trail. It can
	// differ from EmployeeID when a manager enters time on behalf of
	// someone else.
	ActorID int64

	// AdminOverride skips the backdate limit check.
	AdminOverride bool
}

// UpdateEntryParams carries a partial update of an existing entry.
// StartTime and EndTime must be provided together; changing the date
// requires new times as well.
type UpdateEntryParams struct {
	EntryID   int64
	ProjectID *int64
	Date      *time.Time
	StartTime *string
	EndTime   *string
	Notes     *string
	ActorID   int64
}

// ListEntriesParams filters entry listings.
type ListEntriesParams struct {
	CompanyID  int64
	EmployeeID *int64
	ProjectID  *int64
	Status     *domain.EntryStatus
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// EmployeeReport aggregates an employee's classified minutes over a
// date range. WeightedMinutes applies each rule's pay multiplier to
// its bucket.
type EmployeeReport struct {
	EmployeeID      int64
	From            time.Time
	To              time.Time
	TotalMinutes    int
	DayMinutes      int
	EveningMinutes  int
	NightMinutes    int
	WeightedMinutes float64
}

// EntryService handles the time entry lifecycle: submission with
// midnight splitting, overlap rejection and hour-type classification,
// plus edits and deletion.
type EntryService interface {
	CreateEntry(ctx context.Context, params CreateEntryParams) (*domain.TimeEntry, error)
	GetEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, params ListEntriesParams) ([]*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, params UpdateEntryParams) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, entryID int64, actorID int64) error
}

// ApprovalService handles the pending/approved/rejected/locked workflow.
type ApprovalService interface {
	ListPending(ctx context.Context, companyID int64) ([]*domain.TimeEntry, error)
	Approve(ctx context.Context, entryID int64, approverID int64) (*domain.TimeEntry, error)
	Reject(ctx context.Context, entryID int64, approverID int64, reason string) (*domain.TimeEntry, error)
}

// ReportService aggregates classified minutes for reporting.
type ReportService interface {
	EmployeeTotals(ctx context.Context, companyID int64, employeeID int64, from, to time.Time) (*EmployeeReport, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Entry    EntryService
	Approval ApprovalService
	Report   ReportService
}
