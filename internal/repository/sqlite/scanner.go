package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanAll[T any](rows Rows, scanFunc func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scanFunc(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	err := scanner.Scan(
		&employee.ID,
		&employee.CompanyID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Department,
		&employee.Position,
		&employee.BackdateLimitDays,
		&employee.Active,
	)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	return scanAll(rows, ScanEmployee)
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	err := scanner.Scan(
		&project.ID,
		&project.CompanyID,
		&project.Name,
		&project.Code,
		&project.Color,
		&project.Active,
	)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	return scanAll(rows, ScanProject)
}

// ScanWorkingHourRule scans a single working-hour rule from a database row
func ScanWorkingHourRule(scanner Scanner) (*WorkingHourRule, error) {
	rule := &WorkingHourRule{}
	err := scanner.Scan(
		&rule.ID,
		&rule.CompanyID,
		&rule.Name,
		&rule.StartTime,
		&rule.EndTime,
		&rule.Multiplier,
		&rule.Active,
	)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// ScanWorkingHourRules scans multiple working-hour rules from database rows
func ScanWorkingHourRules(rows Rows) ([]*WorkingHourRule, error) {
	return scanAll(rows, ScanWorkingHourRule)
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var date string

	err := scanner.Scan(
		&entry.ID,
		&entry.CompanyID,
		&entry.EmployeeID,
		&entry.ProjectID,
		&date,
		&entry.Notes,
		&entry.FullDay,
		&entry.Status,
	)
	if err != nil {
		return nil, err
	}

	entry.Date, err = ParseDateFromDB(date)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	return scanAll(rows, ScanTimeEntry)
}

// ScanEntrySegment scans a single entry segment from a database row
func ScanEntrySegment(scanner Scanner) (*EntrySegment, error) {
	segment := &EntrySegment{}
	var date string

	err := scanner.Scan(
		&segment.ID,
		&segment.EntryID,
		&date,
		&segment.StartTime,
		&segment.EndTime,
		&segment.DurationMinutes,
		&segment.DayMinutes,
		&segment.EveningMinutes,
		&segment.NightMinutes,
	)
	if err != nil {
		return nil, err
	}

	segment.Date, err = ParseDateFromDB(date)
	if err != nil {
		return nil, err
	}

	return segment, nil
}

// ScanEntrySegments scans multiple entry segments from database rows
func ScanEntrySegments(rows Rows) ([]*EntrySegment, error) {
	return scanAll(rows, ScanEntrySegment)
}

// ScanSegmentWithStatus scans a segment joined with its parent entry's status
func ScanSegmentWithStatus(scanner Scanner) (*SegmentWithStatus, error) {
	segment := &SegmentWithStatus{}
	var date string

	err := scanner.Scan(
		&segment.ID,
		&segment.EntryID,
		&date,
		&segment.StartTime,
		&segment.EndTime,
		&segment.DurationMinutes,
		&segment.DayMinutes,
		&segment.EveningMinutes,
		&segment.NightMinutes,
		&segment.EntryStatus,
	)
	if err != nil {
		return nil, err
	}

	segment.Date, err = ParseDateFromDB(date)
	if err != nil {
		return nil, err
	}

	return segment, nil
}

// ScanSegmentsWithStatus scans multiple joined segments from database rows
func ScanSegmentsWithStatus(rows Rows) ([]*SegmentWithStatus, error) {
	return scanAll(rows, ScanSegmentWithStatus)
}

// ScanSettings scans a single company settings row
func ScanSettings(scanner Scanner) (*Settings, error) {
	settings := &Settings{}
	err := scanner.Scan(
		&settings.CompanyID,
		&settings.ApprovalType,
		&settings.DefaultBackdateDays,
		&settings.StandardWorkingHours,
		&settings.AutoLockAfterApproval,
	)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// ScanAuditRecord scans a single audit record from a database row
func ScanAuditRecord(scanner Scanner) (*AuditRecord, error) {
	record := &AuditRecord{}
	var createdAt string

	err := scanner.Scan(
		&record.ID,
		&record.CompanyID,
		&record.UserID,
		&record.Action,
		&record.EntityType,
		&record.EntityID,
		&record.OldValues,
		&record.NewValues,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt, err = ParseTimestampFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ScanAuditRecords scans multiple audit records from database rows
func ScanAuditRecords(rows Rows) ([]*AuditRecord, error) {
	return scanAll(rows, ScanAuditRecord)
}
