package services

import (
	"context"
	"strings"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/repository/sqlite"
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportService creates a new ReportService instance
func NewReportService(repo sqlite.Repository) ReportService {
	return &reportServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// EmployeeTotals aggregates an employee's classified minutes over a
// date range. Rejected entries are excluded. Weighted minutes apply the
// pay multiplier of each hour-type's rule to its bucket; buckets with
// no matching rule weigh 1.0.
func (s *reportServiceImpl) EmployeeTotals(ctx context.Context, companyID int64, employeeID int64, from, to time.Time) (*EmployeeReport, error) {
	if _, err := s.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	segments, err := s.repo.ListSegmentsForRange(ctx, companyID, &employeeID, from, to)
	if err != nil {
		return nil, err
	}

	report := &EmployeeReport{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
	}
	for _, segment := range segments {
		if segment.EntryStatus == string(domain.StatusRejected) {
			continue
		}
		report.TotalMinutes += segment.DurationMinutes
		report.DayMinutes += segment.DayMinutes
		report.EveningMinutes += segment.EveningMinutes
		report.NightMinutes += segment.NightMinutes
	}

	dayMult, eveningMult, nightMult, err := s.multipliers(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report.WeightedMinutes = float64(report.DayMinutes)*dayMult +
		float64(report.EveningMinutes)*eveningMult +
		float64(report.NightMinutes)*nightMult

	return report, nil
}

func (s *reportServiceImpl) multipliers(ctx context.Context, companyID int64) (day, evening, night float64, err error) {
	day, evening, night = 1.0, 1.0, 1.0

	dbRules, err := s.repo.ListActiveRules(ctx, companyID)
	if err != nil {
		return 0, 0, 0, err
	}

	for _, rule := range dbRules {
		switch strings.ToLower(rule.Name) {
		case "day":
			day = rule.Multiplier
		case "evening":
			evening = rule.Multiplier
		case "night":
			night = rule.Multiplier
		}
	}
	return day, evening, night, nil
}
