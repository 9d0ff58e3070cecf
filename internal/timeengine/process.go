package timeengine

import "time"

// ProcessEntry runs the full pipeline for one submitted entry: split a
// possibly cross-midnight range into single-day ranges, then compute
// duration and hour-type totals for each. The caller is responsible
// for overlap-checking the returned segments against persisted state
// before writing them.
func ProcessEntry(date time.Time, startTime, endTime string, rules []WorkingHourRule) []Segment {
	ranges := SplitCrossMidnight(date, startTime, endTime)

	segments := make([]Segment, len(ranges))
	for i, r := range ranges {
		segments[i] = Segment{
			TimeRange:       r,
			DurationMinutes: CalculateDuration(r.StartTime, r.EndTime),
			HourTypeTotals:  CalculateHourTypes(r.StartTime, r.EndTime, rules),
		}
	}
	return segments
}
