package timeengine

import "time"

// SplitCrossMidnight decomposes an entry into single-day ranges. When
// the end is numerically later than the start the entry fits in one
// day and is returned unchanged. Otherwise it crosses midnight and
// becomes exactly two ranges: the start date up to "24:00", and the
// next date from "00:00" to the original end.
//
// Equal start and end also take the crossing path, producing a
// degenerate zero-length second range ("00:00"-"00:00" on the next
// day). Persisted minute totals depend on this shape, so it is kept
// as-is rather than treated as a full day or rejected.
func SplitCrossMidnight(date time.Time, startTime, endTime string) []TimeRange {
	if TimeToMinutes(endTime) > TimeToMinutes(startTime) {
		return []TimeRange{{Date: date, StartTime: startTime, EndTime: endTime}}
	}

	return []TimeRange{
		{Date: StartOfDay(date), StartTime: startTime, EndTime: EndOfDay},
		{Date: StartOfDay(date.AddDate(0, 0, 1)), StartTime: "00:00", EndTime: endTime},
	}
}
