package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/logging"
	"timeclock/internal/repository/sqlite"
)

// approvalServiceImpl implements the ApprovalService interface
type approvalServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	now    func() time.Time
}

// NewApprovalService creates a new ApprovalService instance
func NewApprovalService(repo sqlite.Repository) ApprovalService {
	return &approvalServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		now:    time.Now,
	}
}

// ListPending retrieves all entries awaiting approval for a company
func (s *approvalServiceImpl) ListPending(ctx context.Context, companyID int64) ([]*domain.TimeEntry, error) {
	status := string(domain.StatusPending)
	dbEntries, err := s.repo.SearchTimeEntries(ctx, sqlite.EntrySearchOptions{
		CompanyID: companyID,
		Status:    &status,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.TimeEntry, 0, len(dbEntries))
	for _, dbEntry := range dbEntries {
		entry := s.mapper.Entry.FromDatabase(*dbEntry)
		dbSegments, err := s.repo.GetEntrySegments(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		entry.Segments = s.mapper.Entry.SegmentsFromDatabase(dbSegments)
		entries = append(entries, &entry)
	}
	return entries, nil
}

// Approve transitions a pending entry to approved, or straight to
// locked when the company auto-locks after approval.
func (s *approvalServiceImpl) Approve(ctx context.Context, entryID int64, approverID int64) (*domain.TimeEntry, error) {
	entry, err := s.loadPendingEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, entry.CompanyID)
	if err != nil {
		return nil, err
	}

	newStatus := domain.StatusApproved
	if settings.AutoLockAfterApproval {
		newStatus = domain.StatusLocked
	}

	if err := s.repo.UpdateTimeEntryStatus(ctx, entryID, string(newStatus)); err != nil {
		return nil, err
	}

	oldStatus := entry.Status
	entry.Status = newStatus

	logging.Debugf("entry %d approved by %d: %s -> %s\n", entryID, approverID, oldStatus, newStatus)
	s.writeAudit(ctx, entry.CompanyID, approverID, domain.AuditApprove, entryID,
		fmt.Sprintf(`{"status":%q}`, oldStatus), fmt.Sprintf(`{"status":%q}`, newStatus))

	return entry, nil
}

// Reject transitions a pending entry to rejected. The reason is
// mandatory and lands in the audit trail; rejected segments no longer
// block overlapping submissions.
func (s *approvalServiceImpl) Reject(ctx context.Context, entryID int64, approverID int64, reason string) (*domain.TimeEntry, error) {
	if reason == "" {
		return nil, errors.NewValidationError("a rejection reason is required", nil)
	}

	entry, err := s.loadPendingEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTimeEntryStatus(ctx, entryID, string(domain.StatusRejected)); err != nil {
		return nil, err
	}

	oldStatus := entry.Status
	entry.Status = domain.StatusRejected

	logging.Debugf("entry %d rejected by %d: %s\n", entryID, approverID, reason)
	s.writeAudit(ctx, entry.CompanyID, approverID, domain.AuditReject, entryID,
		fmt.Sprintf(`{"status":%q}`, oldStatus),
		fmt.Sprintf(`{"status":%q,"reason":%q}`, domain.StatusRejected, reason))

	return entry, nil
}

func (s *approvalServiceImpl) loadPendingEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	dbEntry, err := s.repo.GetTimeEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry := s.mapper.Entry.FromDatabase(*dbEntry)

	if entry.Status != domain.StatusPending {
		return nil, errors.NewValidationError(
			fmt.Sprintf("time entry %d is not awaiting approval (status %s)", entryID, entry.Status), nil)
	}
	return &entry, nil
}

func (s *approvalServiceImpl) loadSettings(ctx context.Context, companyID int64) (domain.Settings, error) {
	dbSettings, err := s.repo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return domain.DefaultSettings(companyID), nil
		}
		return domain.Settings{}, err
	}
	return s.mapper.Settings.FromDatabase(*dbSettings), nil
}

func (s *approvalServiceImpl) writeAudit(ctx context.Context, companyID, actorID int64, action domain.AuditAction, entityID int64, oldValues, newValues string) {
	record := domain.AuditRecord{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		UserID:     actorID,
		Action:     action,
		EntityType: "time_entry",
		EntityID:   fmt.Sprintf("%d", entityID),
		OldValues:  oldValues,
		NewValues:  newValues,
		CreatedAt:  s.now(),
	}
	dbRecord := s.mapper.Audit.ToDatabase(record)
	if err := s.repo.CreateAuditRecord(ctx, &dbRecord); err != nil {
		logging.Debugf("audit record for %s %d failed: %v\n", action, entityID, err)
	}
}
