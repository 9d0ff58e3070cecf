package timeengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func standardRules() []WorkingHourRule {
	return []WorkingHourRule{
		{Name: "Day", StartTime: "08:00", EndTime: "18:00"},
		{Name: "Evening", StartTime: "18:00", EndTime: "22:00"},
		{Name: "Night", StartTime: "22:00", EndTime: "08:00"},
	}
}

func TestCalculateHourTypes(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		rules     []WorkingHourRule
		expected  HourTypeTotals
	}{
		{
			name:      "entirely inside day window",
			startTime: "09:00",
			endTime:   "17:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{DayMinutes: 480},
		},
		{
			name:      "splits at the evening boundary",
			startTime: "09:00",
			endTime:   "20:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{DayMinutes: 540, EveningMinutes: 120},
		},
		{
			name:      "early morning falls in the wrapped night window",
			startTime: "00:00",
			endTime:   "06:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{NightMinutes: 360},
		},
		{
			name:      "spans all three windows",
			startTime: "07:00",
			endTime:   "23:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{DayMinutes: 600, EveningMinutes: 240, NightMinutes: 120},
		},
		{
			name:      "segment ending at the sentinel",
			startTime: "21:00",
			endTime:   "24:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{EveningMinutes: 60, NightMinutes: 120},
		},
		{
			name:      "unrecognized rule names are discarded",
			startTime: "09:00",
			endTime:   "17:00",
			rules: []WorkingHourRule{
				{Name: "Overtime", StartTime: "08:00", EndTime: "18:00"},
			},
			expected: HourTypeTotals{},
		},
		{
			name:      "rule names match case-insensitively",
			startTime: "09:00",
			endTime:   "17:00",
			rules: []WorkingHourRule{
				{Name: "DAY", StartTime: "08:00", EndTime: "18:00"},
			},
			expected: HourTypeTotals{DayMinutes: 480},
		},
		{
			name:      "overlapping rules double-count",
			startTime: "09:00",
			endTime:   "11:00",
			rules: []WorkingHourRule{
				{Name: "Day", StartTime: "08:00", EndTime: "18:00"},
				{Name: "Day", StartTime: "09:00", EndTime: "10:00"},
			},
			expected: HourTypeTotals{DayMinutes: 180},
		},
		{
			name:      "no rules yields zero totals",
			startTime: "09:00",
			endTime:   "17:00",
			rules:     nil,
			expected:  HourTypeTotals{},
		},
		{
			name:      "unsplit cross-midnight range is normalized defensively",
			startTime: "22:00",
			endTime:   "02:00",
			rules:     standardRules(),
			expected:  HourTypeTotals{NightMinutes: 240},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHourTypes(tt.startTime, tt.endTime, tt.rules)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateHourTypesTilesFullDay(t *testing.T) {
	// With the standard gap-free rule set, every minute of a full day
	// lands in exactly one bucket.
	totals := CalculateHourTypes("00:00", "24:00", standardRules())

	assert.Equal(t, 600, totals.DayMinutes)
	assert.Equal(t, 240, totals.EveningMinutes)
	assert.Equal(t, 600, totals.NightMinutes)
	assert.Equal(t, minutesPerDay, totals.DayMinutes+totals.EveningMinutes+totals.NightMinutes)
}
