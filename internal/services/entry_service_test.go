package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/ratelimit"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/timeengine"
)

func setupEntryService(t *testing.T) (EntryService, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	seedCompany(t, repo)

	return NewEntryService(repo, nil), repo
}

// seedCompany inserts the employee, project and default rule set the
// entry tests run against: employee 1, project 1, company 1.
func seedCompany(t *testing.T, repo sqlite.Repository) {
	employee := &sqlite.Employee{
		CompanyID:         1,
		FirstName:         "Grace",
		LastName:          "Hopper",
		Email:             "grace@example.com",
		BackdateLimitDays: 7,
		Active:            true,
	}
	require.NoError(t, repo.CreateEmployee(context.Background(), employee))

	project := &sqlite.Project{CompanyID: 1, Name: "Compilers", Active: true}
	require.NoError(t, repo.CreateProject(context.Background(), project))

	mapper := domain.NewRuleMapper()
	for _, rule := range domain.DefaultWorkingHourRules(1) {
		dbRule := mapper.ToDatabase(rule)
		require.NoError(t, repo.CreateWorkingHourRule(context.Background(), &dbRule))
	}
}

func today() time.Time {
	return timeengine.StartOfDay(time.Now())
}

func TestEntryService_CreateEntry(t *testing.T) {
	service, _ := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID:  1,
		EmployeeID: 1,
		ProjectID:  1,
		Date:       today(),
		StartTime:  "09:00",
		EndTime:    "17:00",
		Notes:      "regular day",
		ActorID:    1,
	})
	require.NoError(t, err)

	assert.Greater(t, entry.ID, int64(0))
	assert.Equal(t, domain.StatusApproved, entry.Status)
	require.Len(t, entry.Segments, 1)
	assert.Equal(t, 480, entry.Segments[0].DurationMinutes)
	assert.Equal(t, 480, entry.Segments[0].DayMinutes)
	assert.Equal(t, 0, entry.Segments[0].NightMinutes)
}

func TestEntryService_CreateEntry_CrossMidnight(t *testing.T) {
	service, _ := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID:  1,
		EmployeeID: 1,
		ProjectID:  1,
		Date:       today(),
		StartTime:  "22:15",
		EndTime:    "06:45",
		ActorID:    1,
	})
	require.NoError(t, err)

	require.Len(t, entry.Segments, 2)
	first, second := entry.Segments[0], entry.Segments[1]

	assert.Equal(t, "22:15", first.StartTime)
	assert.Equal(t, "24:00", first.EndTime)
	assert.Equal(t, 105, first.DurationMinutes)
	assert.Equal(t, today(), first.Date)

	assert.Equal(t, "00:00", second.StartTime)
	assert.Equal(t, "06:45", second.EndTime)
	assert.Equal(t, 405, second.DurationMinutes)
	assert.Equal(t, today().AddDate(0, 0, 1), second.Date)

	assert.Equal(t, 510, entry.TotalMinutes())
	// 22:15-24:00 is all night; 00:00-06:45 is night until 08:00.
	assert.Equal(t, 105, first.NightMinutes)
	assert.Equal(t, 405, second.NightMinutes)
}

func TestEntryService_CreateEntry_RejectsOverlap(t *testing.T) {
	service, _ := setupEntryService(t)

	_, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)

	_, err = service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "11:00", EndTime: "13:00", ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// Touching endpoints do not overlap.
	_, err = service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "12:00", EndTime: "13:00", ActorID: 1,
	})
	assert.NoError(t, err)
}

func TestEntryService_CreateEntry_RejectedEntriesDoNotBlock(t *testing.T) {
	service, repo := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTimeEntryStatus(context.Background(), entry.ID, string(domain.StatusRejected)))

	_, err = service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "10:00", EndTime: "11:00", ActorID: 1,
	})
	assert.NoError(t, err)
}

func TestEntryService_CreateEntry_BackdateLimit(t *testing.T) {
	service, _ := setupEntryService(t)

	params := CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today().AddDate(0, 0, -10), StartTime: "09:00", EndTime: "17:00", ActorID: 1,
	}

	_, err := service.CreateEntry(context.Background(), params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "older than 7 days")

	// Admins can backfill beyond the employee's limit.
	params.AdminOverride = true
	_, err = service.CreateEntry(context.Background(), params)
	assert.NoError(t, err)
}

func TestEntryService_CreateEntry_FutureDate(t *testing.T) {
	service, _ := setupEntryService(t)

	_, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today().AddDate(0, 0, 1), StartTime: "09:00", EndTime: "17:00", ActorID: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "future")
}

func TestEntryService_CreateEntry_ApprovalPolicy(t *testing.T) {
	service, repo := setupEntryService(t)

	require.NoError(t, repo.SaveSettings(context.Background(), &sqlite.Settings{
		CompanyID:             1,
		ApprovalType:          string(domain.ApprovalAllEntries),
		DefaultBackdateDays:   7,
		StandardWorkingHours:  8,
		AutoLockAfterApproval: true,
	}))

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "17:00", ActorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, entry.Status)
}

func TestEntryService_CreateEntry_ValidationFailures(t *testing.T) {
	service, _ := setupEntryService(t)

	tests := []struct {
		name   string
		params CreateEntryParams
	}{
		{
			name: "bad start time",
			params: CreateEntryParams{
				CompanyID: 1, EmployeeID: 1, ProjectID: 1,
				Date: today(), StartTime: "9:00", EndTime: "17:00",
			},
		},
		{
			name: "missing end time",
			params: CreateEntryParams{
				CompanyID: 1, EmployeeID: 1, ProjectID: 1,
				Date: today(), StartTime: "09:00",
			},
		},
		{
			name: "24:00 as start",
			params: CreateEntryParams{
				CompanyID: 1, EmployeeID: 1, ProjectID: 1,
				Date: today(), StartTime: "24:00", EndTime: "17:00",
			},
		},
		{
			name: "zero employee id",
			params: CreateEntryParams{
				CompanyID: 1, ProjectID: 1,
				Date: today(), StartTime: "09:00", EndTime: "17:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEntry(context.Background(), tt.params)
			assert.Error(t, err)
		})
	}
}

func TestEntryService_CreateEntry_24OOAsEndIsValid(t *testing.T) {
	service, _ := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "21:00", EndTime: "24:00", ActorID: 1,
	})
	require.NoError(t, err)
	require.Len(t, entry.Segments, 1)
	assert.Equal(t, 180, entry.Segments[0].DurationMinutes)
}

func TestEntryService_CreateEntry_RateLimited(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	seedCompany(t, repo)

	limiter := ratelimit.NewWithPolicy(ratelimit.NewMemoryStore(), time.Minute, 2)
	service := NewEntryService(repo, limiter)

	for i, window := range [][2]string{{"08:00", "09:00"}, {"09:00", "10:00"}} {
		_, err := service.CreateEntry(context.Background(), CreateEntryParams{
			CompanyID: 1, EmployeeID: 1, ProjectID: 1,
			Date: today(), StartTime: window[0], EndTime: window[1], ActorID: 1,
		})
		require.NoError(t, err, "attempt %d", i)
	}

	_, err = service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "10:00", EndTime: "11:00", ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsRateLimitedError(err))
}

func TestEntryService_UpdateEntry_ReclassifiesTimes(t *testing.T) {
	service, _ := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "17:00", ActorID: 1,
	})
	require.NoError(t, err)

	start, end := "16:00", "23:00"
	updated, err := service.UpdateEntry(context.Background(), UpdateEntryParams{
		EntryID:   entry.ID,
		StartTime: &start,
		EndTime:   &end,
		ActorID:   1,
	})
	require.NoError(t, err)

	require.Len(t, updated.Segments, 1)
	assert.Equal(t, 420, updated.Segments[0].DurationMinutes)
	assert.Equal(t, 120, updated.Segments[0].DayMinutes)     // 16:00-18:00
	assert.Equal(t, 240, updated.Segments[0].EveningMinutes) // 18:00-22:00
	assert.Equal(t, 60, updated.Segments[0].NightMinutes)    // 22:00-23:00
}

func TestEntryService_UpdateEntry_ExcludesOwnSegments(t *testing.T) {
	service, _ := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "17:00", ActorID: 1,
	})
	require.NoError(t, err)

	// Shifting the same entry by an hour overlaps its old interval,
	// which must not count as a conflict.
	start, end := "10:00", "18:00"
	_, err = service.UpdateEntry(context.Background(), UpdateEntryParams{
		EntryID: entry.ID, StartTime: &start, EndTime: &end, ActorID: 1,
	})
	assert.NoError(t, err)
}

func TestEntryService_UpdateEntry_ConflictsWithOthers(t *testing.T) {
	service, _ := setupEntryService(t)

	_, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "13:00", EndTime: "15:00", ActorID: 1,
	})
	require.NoError(t, err)

	start, end := "11:00", "14:00"
	_, err = service.UpdateEntry(context.Background(), UpdateEntryParams{
		EntryID: entry.ID, StartTime: &start, EndTime: &end, ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestEntryService_UpdateEntry_LockedIsImmutable(t *testing.T) {
	service, repo := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateTimeEntryStatus(context.Background(), entry.ID, string(domain.StatusLocked)))

	notes := "edited"
	_, err = service.UpdateEntry(context.Background(), UpdateEntryParams{
		EntryID: entry.ID, Notes: &notes, ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))

	err = service.DeleteEntry(context.Background(), entry.ID, 1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
}

func TestEntryService_UpdateEntry_EditsOnlyResetsApproval(t *testing.T) {
	service, repo := setupEntryService(t)

	require.NoError(t, repo.SaveSettings(context.Background(), &sqlite.Settings{
		CompanyID:            1,
		ApprovalType:         string(domain.ApprovalEditsOnly),
		DefaultBackdateDays:  7,
		StandardWorkingHours: 8,
	}))

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, entry.Status)

	notes := "corrected"
	updated, err := service.UpdateEntry(context.Background(), UpdateEntryParams{
		EntryID: entry.ID, Notes: &notes, ActorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updated.Status)
}

func TestEntryService_DeleteEntry(t *testing.T) {
	service, repo := setupEntryService(t)

	entry, err := service.CreateEntry(context.Background(), CreateEntryParams{
		CompanyID: 1, EmployeeID: 1, ProjectID: 1,
		Date: today(), StartTime: "09:00", EndTime: "12:00", ActorID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteEntry(context.Background(), entry.ID, 1))

	_, err = service.GetEntry(context.Background(), entry.ID)
	assert.True(t, errors.IsNotFoundError(err))

	// Create and delete each leave an audit record.
	records, err := repo.ListAuditRecords(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	actions := []string{records[0].Action, records[1].Action}
	assert.Contains(t, actions, "CREATE")
	assert.Contains(t, actions, "DELETE")
}

func TestEntryService_ListEntries(t *testing.T) {
	service, _ := setupEntryService(t)

	for _, window := range [][2]string{{"08:00", "10:00"}, {"11:00", "13:00"}} {
		_, err := service.CreateEntry(context.Background(), CreateEntryParams{
			CompanyID: 1, EmployeeID: 1, ProjectID: 1,
			Date: today(), StartTime: window[0], EndTime: window[1], ActorID: 1,
		})
		require.NoError(t, err)
	}

	employeeID := int64(1)
	entries, err := service.ListEntries(context.Background(), ListEntriesParams{
		CompanyID:  1,
		EmployeeID: &employeeID,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Segments)
	}
}
