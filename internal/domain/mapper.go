package domain

import (
	"timeclock/internal/repository/sqlite"
)

// Mapper bundles the per-entity mappers for convenient injection.
type Mapper struct {
	Employee *EmployeeMapper
	Project  *ProjectMapper
	Rule     *RuleMapper
	Entry    *EntryMapper
	Settings *SettingsMapper
	Audit    *AuditMapper
}

// NewMapper creates a Mapper with all entity mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee: NewEmployeeMapper(),
		Project:  NewProjectMapper(),
		Rule:     NewRuleMapper(),
		Entry:    NewEntryMapper(),
		Settings: NewSettingsMapper(),
		Audit:    NewAuditMapper(),
	}
}

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:                employee.ID,
		CompanyID:         employee.CompanyID,
		FirstName:         employee.FirstName,
		LastName:          employee.LastName,
		Email:             employee.Email,
		Department:        employee.Department,
		Position:          employee.Position,
		BackdateLimitDays: employee.BackdateLimitDays,
		Active:            employee.Active,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:                dbEmployee.ID,
		CompanyID:         dbEmployee.CompanyID,
		FirstName:         dbEmployee.FirstName,
		LastName:          dbEmployee.LastName,
		Email:             dbEmployee.Email,
		Department:        dbEmployee.Department,
		Position:          dbEmployee.Position,
		BackdateLimitDays: dbEmployee.BackdateLimitDays,
		Active:            dbEmployee.Active,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []*sqlite.Employee) []Employee {
	employees := make([]Employee, len(dbEmployees))
	for i, e := range dbEmployees {
		employees[i] = m.FromDatabase(*e)
	}
	return employees
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:        project.ID,
		CompanyID: project.CompanyID,
		Name:      project.Name,
		Code:      project.Code,
		Color:     project.Color,
		Active:    project.Active,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:        dbProject.ID,
		CompanyID: dbProject.CompanyID,
		Name:      dbProject.Name,
		Code:      dbProject.Code,
		Color:     dbProject.Color,
		Active:    dbProject.Active,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, p := range dbProjects {
		projects[i] = m.FromDatabase(*p)
	}
	return projects
}

// RuleMapper handles conversion between domain and database WorkingHourRule models.
type RuleMapper struct{}

// NewRuleMapper creates a new RuleMapper instance.
func NewRuleMapper() *RuleMapper {
	return &RuleMapper{}
}

// ToDatabase converts a domain WorkingHourRule to a database WorkingHourRule.
func (m *RuleMapper) ToDatabase(rule WorkingHourRule) sqlite.WorkingHourRule {
	return sqlite.WorkingHourRule{
		ID:         rule.ID,
		CompanyID:  rule.CompanyID,
		Name:       rule.Name,
		StartTime:  rule.StartTime,
		EndTime:    rule.EndTime,
		Multiplier: rule.Multiplier,
		Active:     rule.Active,
	}
}

// FromDatabase converts a database WorkingHourRule to a domain WorkingHourRule.
func (m *RuleMapper) FromDatabase(dbRule sqlite.WorkingHourRule) WorkingHourRule {
	return WorkingHourRule{
		ID:         dbRule.ID,
		CompanyID:  dbRule.CompanyID,
		Name:       dbRule.Name,
		StartTime:  dbRule.StartTime,
		EndTime:    dbRule.EndTime,
		Multiplier: dbRule.Multiplier,
		Active:     dbRule.Active,
	}
}

// FromDatabaseSlice converts a slice of database rules to domain rules.
func (m *RuleMapper) FromDatabaseSlice(dbRules []*sqlite.WorkingHourRule) []WorkingHourRule {
	rules := make([]WorkingHourRule, len(dbRules))
	for i, r := range dbRules {
		rules[i] = m.FromDatabase(*r)
	}
	return rules
}

// EntryMapper handles conversion between domain and database TimeEntry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain TimeEntry to its database parent row.
// Segments are mapped separately with SegmentsToDatabase.
func (m *EntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:         entry.ID,
		CompanyID:  entry.CompanyID,
		EmployeeID: entry.EmployeeID,
		ProjectID:  entry.ProjectID,
		Date:       entry.Date,
		Notes:      entry.Notes,
		FullDay:    entry.FullDay,
		Status:     string(entry.Status),
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:         dbEntry.ID,
		CompanyID:  dbEntry.CompanyID,
		EmployeeID: dbEntry.EmployeeID,
		ProjectID:  dbEntry.ProjectID,
		Date:       dbEntry.Date,
		Notes:      dbEntry.Notes,
		FullDay:    dbEntry.FullDay,
		Status:     EntryStatus(dbEntry.Status),
	}
}

// SegmentToDatabase converts a domain EntrySegment to a database EntrySegment.
func (m *EntryMapper) SegmentToDatabase(segment EntrySegment) sqlite.EntrySegment {
	return sqlite.EntrySegment{
		ID:              segment.ID,
		EntryID:         segment.EntryID,
		Date:            segment.Date,
		StartTime:       segment.StartTime,
		EndTime:         segment.EndTime,
		DurationMinutes: segment.DurationMinutes,
		DayMinutes:      segment.DayMinutes,
		EveningMinutes:  segment.EveningMinutes,
		NightMinutes:    segment.NightMinutes,
	}
}

// SegmentFromDatabase converts a database EntrySegment to a domain EntrySegment.
func (m *EntryMapper) SegmentFromDatabase(dbSegment sqlite.EntrySegment) EntrySegment {
	return EntrySegment{
		ID:              dbSegment.ID,
		EntryID:         dbSegment.EntryID,
		Date:            dbSegment.Date,
		StartTime:       dbSegment.StartTime,
		EndTime:         dbSegment.EndTime,
		DurationMinutes: dbSegment.DurationMinutes,
		DayMinutes:      dbSegment.DayMinutes,
		EveningMinutes:  dbSegment.EveningMinutes,
		NightMinutes:    dbSegment.NightMinutes,
	}
}

// SegmentsToDatabase converts a slice of domain segments to database segments.
func (m *EntryMapper) SegmentsToDatabase(segments []EntrySegment) []*sqlite.EntrySegment {
	dbSegments := make([]*sqlite.EntrySegment, len(segments))
	for i, s := range segments {
		dbSegment := m.SegmentToDatabase(s)
		dbSegments[i] = &dbSegment
	}
	return dbSegments
}

// SegmentsFromDatabase converts a slice of database segments to domain segments.
func (m *EntryMapper) SegmentsFromDatabase(dbSegments []*sqlite.EntrySegment) []EntrySegment {
	segments := make([]EntrySegment, len(dbSegments))
	for i, s := range dbSegments {
		segments[i] = m.SegmentFromDatabase(*s)
	}
	return segments
}

// SettingsMapper handles conversion between domain and database Settings models.
type SettingsMapper struct{}

// NewSettingsMapper creates a new SettingsMapper instance.
func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

// ToDatabase converts domain Settings to database Settings.
func (m *SettingsMapper) ToDatabase(settings Settings) sqlite.Settings {
	return sqlite.Settings{
		CompanyID:             settings.CompanyID,
		ApprovalType:          string(settings.ApprovalType),
		DefaultBackdateDays:   settings.DefaultBackdateDays,
		StandardWorkingHours:  settings.StandardWorkingHours,
		AutoLockAfterApproval: settings.AutoLockAfterApproval,
	}
}

// FromDatabase converts database Settings to domain Settings.
func (m *SettingsMapper) FromDatabase(dbSettings sqlite.Settings) Settings {
	return Settings{
		CompanyID:             dbSettings.CompanyID,
		ApprovalType:          ApprovalType(dbSettings.ApprovalType),
		DefaultBackdateDays:   dbSettings.DefaultBackdateDays,
		StandardWorkingHours:  dbSettings.StandardWorkingHours,
		AutoLockAfterApproval: dbSettings.AutoLockAfterApproval,
	}
}

// AuditMapper handles conversion between domain and database AuditRecord models.
type AuditMapper struct{}

// NewAuditMapper creates a new AuditMapper instance.
func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

// ToDatabase converts a domain AuditRecord to a database AuditRecord.
func (m *AuditMapper) ToDatabase(record AuditRecord) sqlite.AuditRecord {
	return sqlite.AuditRecord{
		ID:         record.ID,
		CompanyID:  record.CompanyID,
		UserID:     record.UserID,
		Action:     string(record.Action),
		EntityType: record.EntityType,
		EntityID:   record.EntityID,
		OldValues:  record.OldValues,
		NewValues:  record.NewValues,
		CreatedAt:  record.CreatedAt,
	}
}

// FromDatabase converts a database AuditRecord to a domain AuditRecord.
func (m *AuditMapper) FromDatabase(dbRecord sqlite.AuditRecord) AuditRecord {
	return AuditRecord{
		ID:         dbRecord.ID,
		CompanyID:  dbRecord.CompanyID,
		UserID:     dbRecord.UserID,
		Action:     AuditAction(dbRecord.Action),
		EntityType: dbRecord.EntityType,
		EntityID:   dbRecord.EntityID,
		OldValues:  dbRecord.OldValues,
		NewValues:  dbRecord.NewValues,
		CreatedAt:  dbRecord.CreatedAt,
	}
}
