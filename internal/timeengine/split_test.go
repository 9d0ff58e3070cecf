package timeengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCrossMidnight(t *testing.T) {
	day := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	t.Run("non-crossing range is returned unchanged", func(t *testing.T) {
		ranges := SplitCrossMidnight(day, "09:00", "17:00")

		require.Len(t, ranges, 1)
		assert.Equal(t, TimeRange{Date: day, StartTime: "09:00", EndTime: "17:00"}, ranges[0])
	})

	t.Run("crossing range splits into two days", func(t *testing.T) {
		ranges := SplitCrossMidnight(day, "21:00", "02:00")

		require.Len(t, ranges, 2)
		assert.Equal(t, TimeRange{Date: day, StartTime: "21:00", EndTime: "24:00"}, ranges[0])
		assert.Equal(t, TimeRange{Date: nextDay, StartTime: "00:00", EndTime: "02:00"}, ranges[1])
	})

	t.Run("end at midnight string splits with degenerate tail", func(t *testing.T) {
		ranges := SplitCrossMidnight(day, "20:00", "00:00")

		require.Len(t, ranges, 2)
		assert.Equal(t, TimeRange{Date: day, StartTime: "20:00", EndTime: "24:00"}, ranges[0])
		assert.Equal(t, TimeRange{Date: nextDay, StartTime: "00:00", EndTime: "00:00"}, ranges[1])
	})

	t.Run("equal endpoints take the crossing path", func(t *testing.T) {
		ranges := SplitCrossMidnight(day, "20:00", "20:00")

		require.Len(t, ranges, 2)
		assert.Equal(t, TimeRange{Date: day, StartTime: "20:00", EndTime: "24:00"}, ranges[0])
		assert.Equal(t, TimeRange{Date: nextDay, StartTime: "00:00", EndTime: "20:00"}, ranges[1])
	})

	t.Run("split segment dates are truncated to midnight", func(t *testing.T) {
		noon := time.Date(2025, time.March, 8, 12, 15, 30, 0, time.UTC)
		ranges := SplitCrossMidnight(noon, "23:00", "01:00")

		require.Len(t, ranges, 2)
		assert.Equal(t, day, ranges[0].Date)
		assert.Equal(t, nextDay, ranges[1].Date)
	})

	t.Run("split across a month boundary", func(t *testing.T) {
		endOfMonth := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
		ranges := SplitCrossMidnight(endOfMonth, "22:30", "06:00")

		require.Len(t, ranges, 2)
		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), ranges[1].Date)
	})
}
