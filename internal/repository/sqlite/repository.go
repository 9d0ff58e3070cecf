package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	ListEmployees(ctx context.Context, companyID int64) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error

	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context, companyID int64) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error

	// Working-hour rule operations
	CreateWorkingHourRule(ctx context.Context, rule *WorkingHourRule) error
	ListActiveRules(ctx context.Context, companyID int64) ([]*WorkingHourRule, error)
	ListRules(ctx context.Context, companyID int64) ([]*WorkingHourRule, error)
	UpdateWorkingHourRule(ctx context.Context, rule *WorkingHourRule) error

	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry, segments []*EntrySegment) error
	GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error)
	GetEntrySegments(ctx context.Context, entryID int64) ([]*EntrySegment, error)
	SearchTimeEntries(ctx context.Context, opts EntrySearchOptions) ([]*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	UpdateTimeEntryStatus(ctx context.Context, id int64, status string) error
	ReplaceSegments(ctx context.Context, entryID int64, segments []*EntrySegment) error
	DeleteTimeEntry(ctx context.Context, id int64) error
	ListSegmentsForDates(ctx context.Context, employeeID int64, dates []time.Time) ([]*SegmentWithStatus, error)
	ListSegmentsForRange(ctx context.Context, companyID int64, employeeID *int64, from, to time.Time) ([]*SegmentWithStatus, error)

	// Settings operations
	GetSettings(ctx context.Context, companyID int64) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error

	// Audit operations
	CreateAuditRecord(ctx context.Context, record *AuditRecord) error
	ListAuditRecords(ctx context.Context, companyID int64, limit int) ([]*AuditRecord, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// withTx runs fn inside a transaction, rolling back on error.
func (r *SQLiteRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit transaction", err)
	}
	return nil
}

// CreateEmployee creates a new employee
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	INSERT INTO employees (company_id, first_name, last_name, email, department, position, backdate_limit_days, active)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		employee.CompanyID, employee.FirstName, employee.LastName, employee.Email,
		employee.Department, employee.Position, employee.BackdateLimitDays, employee.Active)
	if err != nil {
		return err
	}

	employee.ID = id
	return nil
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := `
	SELECT id, company_id, first_name, last_name, email, department, position, backdate_limit_days, active
	FROM employees
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", fmt.Sprintf("%d", id), id)
}

// GetEmployeeByEmail retrieves an employee by email address
func (r *SQLiteRepository) GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	query := `
	SELECT id, company_id, first_name, last_name, email, department, position, backdate_limit_days, active
	FROM employees
	WHERE email = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", email, email)
}

// ListEmployees retrieves all employees for a company
func (r *SQLiteRepository) ListEmployees(ctx context.Context, companyID int64) ([]*Employee, error) {
	query := `
	SELECT id, company_id, first_name, last_name, email, department, position, backdate_limit_days, active
	FROM employees
	WHERE company_id = ?
	ORDER BY last_name ASC, first_name ASC`

	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees", companyID)
}

// UpdateEmployee updates an existing employee
func (r *SQLiteRepository) UpdateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	UPDATE employees
	SET first_name = ?, last_name = ?, email = ?, department = ?, position = ?, backdate_limit_days = ?, active = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "employee", fmt.Sprintf("%d", employee.ID),
		employee.FirstName, employee.LastName, employee.Email, employee.Department,
		employee.Position, employee.BackdateLimitDays, employee.Active, employee.ID)
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (company_id, name, code, color, active)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		project.CompanyID, project.Name, project.Code, project.Color, project.Active)
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := `
	SELECT id, company_id, name, code, color, active
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", fmt.Sprintf("%d", id), id)
}

// ListProjects retrieves all projects for a company
func (r *SQLiteRepository) ListProjects(ctx context.Context, companyID int64) ([]*Project, error) {
	query := `
	SELECT id, company_id, name, code, color, active
	FROM projects
	WHERE company_id = ?
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects", companyID)
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, code = ?, color = ?, active = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", project.ID),
		project.Name, project.Code, project.Color, project.Active, project.ID)
}

// CreateWorkingHourRule creates a new working-hour rule
func (r *SQLiteRepository) CreateWorkingHourRule(ctx context.Context, rule *WorkingHourRule) error {
	query := `
	INSERT INTO working_hour_rules (company_id, name, start_time, end_time, multiplier, active)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		rule.CompanyID, rule.Name, rule.StartTime, rule.EndTime, rule.Multiplier, rule.Active)
	if err != nil {
		return err
	}

	rule.ID = id
	return nil
}

// ListActiveRules retrieves the active working-hour rules for a company
func (r *SQLiteRepository) ListActiveRules(ctx context.Context, companyID int64) ([]*WorkingHourRule, error) {
	query := `
	SELECT id, company_id, name, start_time, end_time, multiplier, active
	FROM working_hour_rules
	WHERE company_id = ? AND active = 1
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanWorkingHourRules, "working hour rules", companyID)
}

// ListRules retrieves all working-hour rules for a company, active or not
func (r *SQLiteRepository) ListRules(ctx context.Context, companyID int64) ([]*WorkingHourRule, error) {
	query := `
	SELECT id, company_id, name, start_time, end_time, multiplier, active
	FROM working_hour_rules
	WHERE company_id = ?
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanWorkingHourRules, "working hour rules", companyID)
}

// UpdateWorkingHourRule updates an existing working-hour rule
func (r *SQLiteRepository) UpdateWorkingHourRule(ctx context.Context, rule *WorkingHourRule) error {
	query := `
	UPDATE working_hour_rules
	SET name = ?, start_time = ?, end_time = ?, multiplier = ?, active = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "working hour rule", fmt.Sprintf("%d", rule.ID),
		rule.Name, rule.StartTime, rule.EndTime, rule.Multiplier, rule.Active, rule.ID)
}

// CreateTimeEntry creates a time entry and its segments in one transaction
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry, segments []*EntrySegment) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		query := `
		INSERT INTO time_entries (company_id, employee_id, project_id, date, notes, full_day, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			entry.CompanyID, entry.EmployeeID, entry.ProjectID, FormatDateForDB(entry.Date),
			entry.Notes, entry.FullDay, entry.Status)
		if err != nil {
			return err
		}
		entry.ID = id

		return insertSegments(ctx, tx, id, segments)
	})
}

func insertSegments(ctx context.Context, tx *sql.Tx, entryID int64, segments []*EntrySegment) error {
	query := `
	INSERT INTO entry_segments (entry_id, date, start_time, end_time, duration_minutes, day_minutes, evening_minutes, night_minutes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for _, segment := range segments {
		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			entryID, FormatDateForDB(segment.Date), segment.StartTime, segment.EndTime,
			segment.DurationMinutes, segment.DayMinutes, segment.EveningMinutes, segment.NightMinutes)
		if err != nil {
			return err
		}
		segment.ID = id
		segment.EntryID = entryID
	}
	return nil
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	query := `
	SELECT id, company_id, employee_id, project_id, date, notes, full_day, status
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", fmt.Sprintf("%d", id), id)
}

// GetEntrySegments retrieves the segments of a time entry
func (r *SQLiteRepository) GetEntrySegments(ctx context.Context, entryID int64) ([]*EntrySegment, error) {
	query := `
	SELECT id, entry_id, date, start_time, end_time, duration_minutes, day_minutes, evening_minutes, night_minutes
	FROM entry_segments
	WHERE entry_id = ?
	ORDER BY date ASC, start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanEntrySegments, "entry segments", entryID)
}

// SearchTimeEntries searches for time entries based on the provided options
func (r *SQLiteRepository) SearchTimeEntries(ctx context.Context, opts EntrySearchOptions) ([]*TimeEntry, error) {
	conditions := []string{"company_id = ?"}
	args := []interface{}{opts.CompanyID}

	if opts.EmployeeID != nil {
		conditions = append(conditions, "employee_id = ?")
		args = append(args, *opts.EmployeeID)
	}
	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.From != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, FormatDateForDB(*opts.From))
	}
	if opts.To != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, FormatDateForDB(*opts.To))
	}

	query := `
	SELECT id, company_id, employee_id, project_id, date, notes, full_day, status
	FROM time_entries
	WHERE ` + strings.Join(conditions, " AND ") + `
	ORDER BY date DESC, id DESC`

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
}

// UpdateTimeEntry updates an existing time entry's parent row
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET project_id = ?, date = ?, notes = ?, full_day = ?, status = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", entry.ID),
		entry.ProjectID, FormatDateForDB(entry.Date), entry.Notes, entry.FullDay, entry.Status, entry.ID)
}

// UpdateTimeEntryStatus sets the status of a time entry
func (r *SQLiteRepository) UpdateTimeEntryStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE time_entries SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", id), status, id)
}

// ReplaceSegments deletes and reinserts the segments of an entry in one transaction
func (r *SQLiteRepository) ReplaceSegments(ctx context.Context, entryID int64, segments []*EntrySegment) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entry_segments WHERE entry_id = ?`, entryID); err != nil {
			return HandleDatabaseError("delete entry segments", err)
		}
		return insertSegments(ctx, tx, entryID, segments)
	})
}

// DeleteTimeEntry deletes a time entry; segments cascade
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", id), id)
}

// ListSegmentsForDates retrieves an employee's segments on the given dates,
// joined with the parent entry's status.
func (r *SQLiteRepository) ListSegmentsForDates(ctx context.Context, employeeID int64, dates []time.Time) ([]*SegmentWithStatus, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(dates))
	args := []interface{}{employeeID}
	for i, date := range dates {
		placeholders[i] = "?"
		args = append(args, FormatDateForDB(date))
	}

	query := `
	SELECT s.id, s.entry_id, s.date, s.start_time, s.end_time, s.duration_minutes, s.day_minutes, s.evening_minutes, s.night_minutes, e.status
	FROM entry_segments s
	JOIN time_entries e ON s.entry_id = e.id
	WHERE e.employee_id = ? AND s.date IN (` + strings.Join(placeholders, ", ") + `)
	ORDER BY s.date ASC, s.start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanSegmentsWithStatus, "entry segments", args...)
}

// ListSegmentsForRange retrieves segments within a date range for a company,
// optionally restricted to one employee, joined with the parent entry's status.
func (r *SQLiteRepository) ListSegmentsForRange(ctx context.Context, companyID int64, employeeID *int64, from, to time.Time) ([]*SegmentWithStatus, error) {
	conditions := []string{"e.company_id = ?", "s.date >= ?", "s.date <= ?"}
	args := []interface{}{companyID, FormatDateForDB(from), FormatDateForDB(to)}

	if employeeID != nil {
		conditions = append(conditions, "e.employee_id = ?")
		args = append(args, *employeeID)
	}

	query := `
	SELECT s.id, s.entry_id, s.date, s.start_time, s.end_time, s.duration_minutes, s.day_minutes, s.evening_minutes, s.night_minutes, e.status
	FROM entry_segments s
	JOIN time_entries e ON s.entry_id = e.id
	WHERE ` + strings.Join(conditions, " AND ") + `
	ORDER BY s.date ASC, s.start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanSegmentsWithStatus, "entry segments", args...)
}

// GetSettings retrieves the settings row for a company
func (r *SQLiteRepository) GetSettings(ctx context.Context, companyID int64) (*Settings, error) {
	query := `
	SELECT company_id, approval_type, default_backdate_days, standard_working_hours, auto_lock_after_approval
	FROM company_settings
	WHERE company_id = ?`

	return QuerySingle(ctx, r.db, query, ScanSettings, "settings", fmt.Sprintf("%d", companyID), companyID)
}

// SaveSettings inserts or replaces the settings row for a company
func (r *SQLiteRepository) SaveSettings(ctx context.Context, settings *Settings) error {
	query := `
	INSERT INTO company_settings (company_id, approval_type, default_backdate_days, standard_working_hours, auto_lock_after_approval)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(company_id) DO UPDATE SET
		approval_type = excluded.approval_type,
		default_backdate_days = excluded.default_backdate_days,
		standard_working_hours = excluded.standard_working_hours,
		auto_lock_after_approval = excluded.auto_lock_after_approval`

	_, err := r.db.ExecContext(ctx, query,
		settings.CompanyID, settings.ApprovalType, settings.DefaultBackdateDays,
		settings.StandardWorkingHours, settings.AutoLockAfterApproval)
	if err != nil {
		return HandleDatabaseError("save settings", err)
	}
	return nil
}

// CreateAuditRecord appends an audit record
func (r *SQLiteRepository) CreateAuditRecord(ctx context.Context, record *AuditRecord) error {
	query := `
	INSERT INTO audit_records (id, company_id, user_id, action, entity_type, entity_id, old_values, new_values, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.CompanyID, record.UserID, record.Action, record.EntityType,
		record.EntityID, record.OldValues, record.NewValues, FormatTimestampForDB(record.CreatedAt))
	if err != nil {
		return HandleDatabaseError("create audit record", err)
	}
	return nil
}

// ListAuditRecords retrieves the most recent audit records for a company
func (r *SQLiteRepository) ListAuditRecords(ctx context.Context, companyID int64, limit int) ([]*AuditRecord, error) {
	query := `
	SELECT id, company_id, user_id, action, entity_type, entity_id, old_values, new_values, created_at
	FROM audit_records
	WHERE company_id = ?
	ORDER BY created_at DESC
	LIMIT ?`

	return QueryMultiple(ctx, r.db, query, ScanAuditRecords, "audit records", companyID, limit)
}
