package timeengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEntry(t *testing.T) {
	day := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)

	t.Run("single-day entry produces one classified segment", func(t *testing.T) {
		segments := ProcessEntry(day, "09:00", "20:00", standardRules())

		require.Len(t, segments, 1)
		assert.Equal(t, 660, segments[0].DurationMinutes)
		assert.Equal(t, HourTypeTotals{DayMinutes: 540, EveningMinutes: 120}, segments[0].HourTypeTotals)
	})

	t.Run("cross-midnight entry produces two segments with split totals", func(t *testing.T) {
		segments := ProcessEntry(day, "21:00", "02:00", standardRules())

		require.Len(t, segments, 2)

		first := segments[0]
		assert.Equal(t, EndOfDay, first.EndTime)
		assert.Equal(t, 180, first.DurationMinutes)
		assert.Equal(t, HourTypeTotals{EveningMinutes: 60, NightMinutes: 120}, first.HourTypeTotals)

		second := segments[1]
		assert.Equal(t, day.AddDate(0, 0, 1), second.Date)
		assert.Equal(t, 120, second.DurationMinutes)
		assert.Equal(t, HourTypeTotals{NightMinutes: 120}, second.HourTypeTotals)
	})

	t.Run("segment durations sum to the whole entry", func(t *testing.T) {
		segments := ProcessEntry(day, "22:15", "06:45", standardRules())

		require.Len(t, segments, 2)
		total := segments[0].DurationMinutes + segments[1].DurationMinutes
		assert.Equal(t, CalculateDuration("22:15", "06:45"), total)
	})
}
