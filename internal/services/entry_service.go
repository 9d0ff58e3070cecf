package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/logging"
	"timeclock/internal/ratelimit"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/timeengine"
	"timeclock/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.EntryValidator
	limiter   *ratelimit.Limiter
	now       func() time.Time
}

// NewEntryService creates a new EntryService instance. The limiter is
// optional; pass nil to disable submission throttling.
func NewEntryService(repo sqlite.Repository, limiter *ratelimit.Limiter) EntryService {
	return &entryServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewEntryValidator(),
		limiter:   limiter,
		now:       time.Now,
	}
}

// CreateEntry submits a work interval: it validates the backdate limit,
// splits the interval at midnight, rejects overlaps with stored
// non-rejected segments, classifies each segment against the company's
// working-hour rules and persists the result.
func (s *entryServiceImpl) CreateEntry(ctx context.Context, params CreateEntryParams) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateEntryForCreation(params.EmployeeID, params.ProjectID, params.Date, params.StartTime, params.EndTime); err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Check(fmt.Sprintf("entry:%d", params.EmployeeID)); err != nil {
			return nil, err
		}
	}

	dbEmployee, err := s.repo.GetEmployee(ctx, params.EmployeeID)
	if err != nil {
		return nil, err
	}
	employee := s.mapper.Employee.FromDatabase(*dbEmployee)

	if !params.AdminOverride {
		check := timeengine.ValidateBackdateLimit(params.Date, employee.BackdateLimitDays, s.now())
		if !check.Valid {
			return nil, errors.NewValidationError(check.Message, nil)
		}
	}

	if _, err := s.repo.GetProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	rules, err := s.loadActiveRules(ctx, params.CompanyID)
	if err != nil {
		return nil, err
	}

	segments := timeengine.ProcessEntry(params.Date, params.StartTime, params.EndTime, rules)

	if err := s.checkOverlaps(ctx, params.EmployeeID, 0, segments); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, params.CompanyID)
	if err != nil {
		return nil, err
	}

	entry := &domain.TimeEntry{
		CompanyID:  params.CompanyID,
		EmployeeID: params.EmployeeID,
		ProjectID:  params.ProjectID,
		Date:       timeengine.StartOfDay(params.Date),
		Notes:      params.Notes,
		FullDay:    params.FullDay,
		Status:     settings.InitialStatus(params.FullDay),
	}
	entry.Segments = segmentsFromEngine(segments)

	dbEntry := s.mapper.Entry.ToDatabase(*entry)
	dbSegments := s.mapper.Entry.SegmentsToDatabase(entry.Segments)
	if err := s.repo.CreateTimeEntry(ctx, &dbEntry, dbSegments); err != nil {
		return nil, err
	}
	entry.ID = dbEntry.ID
	entry.Segments = s.mapper.Entry.SegmentsFromDatabase(dbSegments)

	logging.Debugf("created time entry %d with %d segment(s), status %s\n", entry.ID, len(entry.Segments), entry.Status)

	s.writeAudit(ctx, params.CompanyID, params.ActorID, domain.AuditCreate, entry.ID, "", entry)

	return entry, nil
}

// GetEntry retrieves a time entry with its segments
func (s *entryServiceImpl) GetEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateEntryID(entryID); err != nil {
		return nil, err
	}
	return s.loadEntry(ctx, entryID)
}

// ListEntries retrieves entries matching the given filters, segments included
func (s *entryServiceImpl) ListEntries(ctx context.Context, params ListEntriesParams) ([]*domain.TimeEntry, error) {
	opts := sqlite.EntrySearchOptions{
		CompanyID:  params.CompanyID,
		EmployeeID: params.EmployeeID,
		ProjectID:  params.ProjectID,
		From:       params.From,
		To:         params.To,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.Status != nil {
		status := string(*params.Status)
		opts.Status = &status
	}

	dbEntries, err := s.repo.SearchTimeEntries(ctx, opts)
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

// UpdateEntry applies a partial update. Time changes re-split and
// re-classify the interval; the entry's own segments are excluded from
// the overlap check so an entry never conflicts with itself.
func (s *entryServiceImpl) UpdateEntry(ctx context.Context, params UpdateEntryParams) (*domain.TimeEntry, error) {
	startTime, endTime := "", ""
	if params.StartTime != nil {
		startTime = *params.StartTime
	}
	if params.EndTime != nil {
		endTime = *params.EndTime
	}
	if err := s.validator.ValidateEntryForUpdate(params.EntryID, startTime, endTime); err != nil {
		return nil, err
	}
	if params.Date != nil && startTime == "" {
		return nil, errors.NewValidationError("start and end times are required when changing the date", nil)
	}

	entry, err := s.loadEntry(ctx, params.EntryID)
	if err != nil {
		return nil, err
	}
	if entry.IsLocked() {
		return nil, errors.NewPermissionError("update", "locked time entry")
	}

	oldSnapshot := snapshotJSON(entry)

	if params.ProjectID != nil {
		if _, err := s.repo.GetProject(ctx, *params.ProjectID); err != nil {
			return nil, err
		}
		entry.ProjectID = *params.ProjectID
	}
	if params.Notes != nil {
		entry.Notes = *params.Notes
	}
	if params.Date != nil {
		entry.Date = timeengine.StartOfDay(*params.Date)
	}

	timesChanged := startTime != ""
	if timesChanged {
		rules, err := s.loadActiveRules(ctx, entry.CompanyID)
		if err != nil {
			return nil, err
		}

		segments := timeengine.ProcessEntry(entry.Date, startTime, endTime, rules)

		if err := s.checkOverlaps(ctx, entry.EmployeeID, entry.ID, segments); err != nil {
			return nil, err
		}

		entry.Segments = segmentsFromEngine(segments)
	}

	settings, err := s.loadSettings(ctx, entry.CompanyID)
	if err != nil {
		return nil, err
	}
	if settings.EditRequiresApproval(entry.Status) {
		entry.Status = domain.StatusPending
	}

	dbEntry := s.mapper.Entry.ToDatabase(*entry)
	if err := s.repo.UpdateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}
	if timesChanged {
		dbSegments := s.mapper.Entry.SegmentsToDatabase(entry.Segments)
		if err := s.repo.ReplaceSegments(ctx, entry.ID, dbSegments); err != nil {
			return nil, err
		}
		entry.Segments = s.mapper.Entry.SegmentsFromDatabase(dbSegments)
	}

	logging.Debugf("updated time entry %d, status %s\n", entry.ID, entry.Status)

	s.writeAuditRaw(ctx, entry.CompanyID, params.ActorID, domain.AuditUpdate, entry.ID, oldSnapshot, snapshotJSON(entry))

	return entry, nil
}

// DeleteEntry removes an entry and its segments. Locked entries are immutable.
func (s *entryServiceImpl) DeleteEntry(ctx context.Context, entryID int64, actorID int64) error {
	if err := s.validator.ValidateEntryID(entryID); err != nil {
		return err
	}

	entry, err := s.loadEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.IsLocked() {
		return errors.NewPermissionError("delete", "locked time entry")
	}

	if err := s.repo.DeleteTimeEntry(ctx, entryID); err != nil {
		return err
	}

	s.writeAudit(ctx, entry.CompanyID, actorID, domain.AuditDelete, entryID, snapshotJSON(entry), nil)

	return nil
}

func (s *entryServiceImpl) loadEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	dbEntry, err := s.repo.GetTimeEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry := s.mapper.Entry.FromDatabase(*dbEntry)

	dbSegments, err := s.repo.GetEntrySegments(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Segments = s.mapper.Entry.SegmentsFromDatabase(dbSegments)

	return &entry, nil
}

func (s *entryServiceImpl) loadActiveRules(ctx context.Context, companyID int64) ([]timeengine.WorkingHourRule, error) {
	dbRules, err := s.repo.ListActiveRules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return domain.RulesToEngine(s.mapper.Rule.FromDatabaseSlice(dbRules)), nil
}

func (s *entryServiceImpl) loadSettings(ctx context.Context, companyID int64) (domain.Settings, error) {
	dbSettings, err := s.repo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return domain.DefaultSettings(companyID), nil
		}
		return domain.Settings{}, err
	}
	return s.mapper.Settings.FromDatabase(*dbSettings), nil
}

// checkOverlaps rejects the new segments if any of them overlaps a
// stored segment of a non-rejected entry on the same day. excludeEntryID
// skips the segments of the entry being edited; pass 0 on creation.
func (s *entryServiceImpl) checkOverlaps(ctx context.Context, employeeID, excludeEntryID int64, segments []timeengine.Segment) error {
	dates := make([]time.Time, len(segments))
	for i, segment := range segments {
		dates[i] = segment.Date
	}

	stored, err := s.repo.ListSegmentsForDates(ctx, employeeID, dates)
	if err != nil {
		return err
	}

	existing := make([]timeengine.TimeRange, 0, len(stored))
	for _, segment := range stored {
		if segment.EntryStatus == string(domain.StatusRejected) {
			continue
		}
		if excludeEntryID != 0 && segment.EntryID == excludeEntryID {
			continue
		}
		existing = append(existing, timeengine.TimeRange{
			Date:      segment.Date,
			StartTime: segment.StartTime,
			EndTime:   segment.EndTime,
		})
	}

	for _, segment := range segments {
		result := timeengine.CheckOverlap(segment.TimeRange, existing)
		if result.HasOverlap {
			return errors.NewConflictError(
				fmt.Sprintf("time entry overlaps an existing entry on %s", segment.Date.Format("2006-01-02"))).
				WithContext("conflicts", len(result.ConflictingSegments))
		}
	}
	return nil
}

func (s *entryServiceImpl) writeAudit(ctx context.Context, companyID, actorID int64, action domain.AuditAction, entityID int64, oldValues string, newValue interface{}) {
	newValues := ""
	if newValue != nil {
		newValues = snapshotJSON(newValue)
	}
	s.writeAuditRaw(ctx, companyID, actorID, action, entityID, oldValues, newValues)
}

// writeAuditRaw appends an audit record. Audit failures are logged and
// swallowed; they must not undo a mutation that already committed.
func (s *entryServiceImpl) writeAuditRaw(ctx context.Context, companyID, actorID int64, action domain.AuditAction, entityID int64, oldValues, newValues string) {
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

func segmentsFromEngine(segments []timeengine.Segment) []domain.EntrySegment {
	result := make([]domain.EntrySegment, len(segments))
	for i, segment := range segments {
		result[i] = domain.EntrySegment{
			Date:            segment.Date,
			StartTime:       segment.StartTime,
			EndTime:         segment.EndTime,
			DurationMinutes: segment.DurationMinutes,
			DayMinutes:      segment.DayMinutes,
			EveningMinutes:  segment.EveningMinutes,
			NightMinutes:    segment.NightMinutes,
		}
	}
	return result
}

func snapshotJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
