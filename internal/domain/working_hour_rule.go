package domain

import (
	"timeclock/internal/timeengine"
)

// WorkingHourRule is a named window of the day against which entries
// are classified, with a pay multiplier for reporting. The window may
// wrap midnight (Night 22:00-08:00); the classifier handles that.
type WorkingHourRule struct {
	ID         int64
	CompanyID  int64
	Name       string
	StartTime  string
	EndTime    string
	Multiplier float64
	Active     bool
}

// Wraps reports whether the rule's window crosses midnight.
func (r WorkingHourRule) Wraps() bool {
	return timeengine.TimeToMinutes(r.EndTime) < timeengine.TimeToMinutes(r.StartTime)
}

// ToEngine converts the rule to the time engine's plain representation.
func (r WorkingHourRule) ToEngine() timeengine.WorkingHourRule {
	return timeengine.WorkingHourRule{
		Name:      r.Name,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// RulesToEngine converts a slice of rules for the classifier.
func RulesToEngine(rules []WorkingHourRule) []timeengine.WorkingHourRule {
	engineRules := make([]timeengine.WorkingHourRule, len(rules))
	for i, r := range rules {
		engineRules[i] = r.ToEngine()
	}
	return engineRules
}

// DefaultWorkingHourRules returns the standard three-window rule set
// used to seed a new company.
func DefaultWorkingHourRules(companyID int64) []WorkingHourRule {
	return []WorkingHourRule{
		{CompanyID: companyID, Name: "Day", StartTime: "08:00", EndTime: "18:00", Multiplier: 1.0, Active: true},
		{CompanyID: companyID, Name: "Evening", StartTime: "18:00", EndTime: "22:00", Multiplier: 1.25, Active: true},
		{CompanyID: companyID, Name: "Night", StartTime: "22:00", EndTime: "08:00", Multiplier: 1.5, Active: true},
	}
}
