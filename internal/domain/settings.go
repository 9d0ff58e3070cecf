package domain

// ApprovalType controls which entries require approval before they
// count as final.
type ApprovalType string

const (
	ApprovalAllEntries  ApprovalType = "ALL_ENTRIES"
	ApprovalFullDayOnly ApprovalType = "FULL_DAY_ONLY"
	ApprovalEditsOnly   ApprovalType = "EDITS_ONLY"
	ApprovalNone        ApprovalType = "NONE"
)

// Settings holds per-company policy configuration.
type Settings struct {
	CompanyID             int64
	ApprovalType          ApprovalType
	DefaultBackdateDays   int
	StandardWorkingHours  int
	AutoLockAfterApproval bool
}

// DefaultSettings returns the policy applied to a company with no
// explicit configuration.
func DefaultSettings(companyID int64) Settings {
	return Settings{
		CompanyID:             companyID,
		ApprovalType:          ApprovalNone,
		DefaultBackdateDays:   7,
		StandardWorkingHours:  8,
		AutoLockAfterApproval: true,
	}
}

// InitialStatus derives the status of a newly created entry from the
// company's approval policy.
func (s Settings) InitialStatus(fullDay bool) EntryStatus {
	switch {
	case s.ApprovalType == ApprovalAllEntries:
		return StatusPending
	case s.ApprovalType == ApprovalFullDayOnly && fullDay:
		return StatusPending
	default:
		return StatusApproved
	}
}

// EditRequiresApproval reports whether editing an entry in the given
// status must send it back through approval.
func (s Settings) EditRequiresApproval(status EntryStatus) bool {
	return s.ApprovalType == ApprovalEditsOnly && status == StatusApproved
}
