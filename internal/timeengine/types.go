// Package timeengine converts raw start/end clock times into classified,
// midnight-safe work segments. Every function is a pure computation over
// its arguments: no I/O, no shared state, safe for concurrent callers.
//
// Clock times are "HH:mm" strings, plus the end-of-day sentinel "24:00".
// Inputs are expected to already match the validation layer's time
// pattern; the engine does not defend against malformed strings.
package timeengine

import "time"

// EndOfDay is the sentinel end time meaning minute 1440 of the entry's date.
const EndOfDay = "24:00"

const minutesPerDay = 24 * 60

// TimeRange is a contiguous work interval anchored to a single calendar
// date. After splitting, EndTime is always later than StartTime within
// the same date (no implicit wraparound remains).
type TimeRange struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// WorkingHourRule is a named window of the day, e.g. Day 08:00-18:00.
// The window may wrap midnight (EndTime numerically before StartTime,
// e.g. Night 22:00-08:00); that is an expected case, not an error.
type WorkingHourRule struct {
	Name      string
	StartTime string
	EndTime   string
}

// HourTypeTotals holds the minutes of a range attributed to each of the
// three conventional rule categories.
type HourTypeTotals struct {
	DayMinutes     int
	EveningMinutes int
	NightMinutes   int
}

// OverlapCheckResult reports every existing range that conflicts with a
// candidate, not just the first.
type OverlapCheckResult struct {
	HasOverlap          bool
	ConflictingSegments []TimeRange
}

// BackdateValidation is the engine's only structured failure result.
// Message is empty when Valid is true.
type BackdateValidation struct {
	Valid   bool
	Message string
}

// Segment is a single-day, non-wrapping interval with its computed
// duration and hour-type breakdown, the unit the caller persists.
type Segment struct {
	TimeRange
	DurationMinutes int
	HourTypeTotals
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
