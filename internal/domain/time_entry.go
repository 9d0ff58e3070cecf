package domain

import (
	"time"
)

// EntryStatus is the approval state of a time entry.
type EntryStatus string

const (
	StatusPending  EntryStatus = "PENDING"
	StatusApproved EntryStatus = "APPROVED"
	StatusRejected EntryStatus = "REJECTED"
	StatusLocked   EntryStatus = "LOCKED"
)

// TimeEntry is the parent record for one submitted work interval. The
// interval itself lives in Segments: one per calendar day after
// midnight splitting, each carrying its classified minute totals.
type TimeEntry struct {
	ID         int64
	CompanyID  int64
	EmployeeID int64
	ProjectID  int64
	Date       time.Time
	Notes      string
	FullDay    bool
	Status     EntryStatus
	Segments   []EntrySegment
}

// EntrySegment is a single-day, non-wrapping slice of a time entry
// with its computed duration and hour-type breakdown.
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

// IsLocked reports whether the entry is immutable.
func (e TimeEntry) IsLocked() bool {
	return e.Status == StatusLocked
}

// CountsTowardTotals reports whether the entry's segments should be
// included in overlap checks and reports. Rejected entries do not
// block the time they covered.
func (e TimeEntry) CountsTowardTotals() bool {
	return e.Status != StatusRejected
}

// TotalMinutes sums the duration of all segments.
func (e TimeEntry) TotalMinutes() int {
	total := 0
	for _, s := range e.Segments {
		total += s.DurationMinutes
	}
	return total
}

// IsValid checks if the entry has valid data.
func (e TimeEntry) IsValid() bool {
	if e.CompanyID <= 0 || e.EmployeeID <= 0 || e.ProjectID <= 0 {
		return false
	}
	return !e.Date.IsZero()
}
