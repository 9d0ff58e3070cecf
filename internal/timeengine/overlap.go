package timeengine

// RangesOverlap reports whether two minute-offset ranges intersect.
// Ranges are half-open: touching endpoints are not an overlap, so
// back-to-back entries are allowed. An end at or before its start is
// normalized by a day, the cross-midnight convention.
func RangesOverlap(start1, end1, start2, end2 int) bool {
	if end1 <= start1 {
		end1 += minutesPerDay
	}
	if end2 <= start2 {
		end2 += minutesPerDay
	}
	return start1 < end2 && start2 < end1
}

// CheckOverlap tests a candidate range against existing same-day ranges
// and accumulates every conflict. Entries on other calendar dates never
// conflict regardless of their times; callers are expected to have run
// SplitCrossMidnight first so every range is single-day.
func CheckOverlap(entry TimeRange, existing []TimeRange) OverlapCheckResult {
	entryStart := TimeToMinutes(entry.StartTime)
	entryEnd := TimeToMinutes(entry.EndTime)
	entryDay := StartOfDay(entry.Date)

	var conflicts []TimeRange
	for _, other := range existing {
		if !StartOfDay(other.Date).Equal(entryDay) {
			continue
		}
		if RangesOverlap(entryStart, entryEnd, TimeToMinutes(other.StartTime), TimeToMinutes(other.EndTime)) {
			conflicts = append(conflicts, other)
		}
	}

	return OverlapCheckResult{
		HasOverlap:          len(conflicts) > 0,
		ConflictingSegments: conflicts,
	}
}
