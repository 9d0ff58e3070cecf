package timeengine

import "strings"

// CalculateHourTypes computes how many minutes of an entry fall inside
// each named working-hour window and buckets them by rule name,
// case-insensitively, into the fixed day/evening/night totals. Rules
// with any other name have their overlap computed and discarded.
//
// The entry is expected to be a single-day range (split first); an end
// at or before the start is normalized by a day as a fallback. Rules
// are assumed to tile the day: if they overlap each other, minutes are
// counted once per matching rule.
func CalculateHourTypes(startTime, endTime string, rules []WorkingHourRule) HourTypeTotals {
	start := TimeToMinutes(startTime)
	end := TimeToMinutes(endTime)
	if endTime == EndOfDay {
		end = minutesPerDay
	}
	if end <= start {
		end += minutesPerDay
	}

	var totals HourTypeTotals
	for _, rule := range rules {
		overlap := ruleOverlap(start, end, TimeToMinutes(rule.StartTime), TimeToMinutes(rule.EndTime))
		switch strings.ToLower(rule.Name) {
		case "day":
			totals.DayMinutes += overlap
		case "evening":
			totals.EveningMinutes += overlap
		case "night":
			totals.NightMinutes += overlap
		}
	}
	return totals
}

// ruleOverlap returns the overlap minutes between an entry and one
// rule window. A wrapped rule (end before start, e.g. Night
// 22:00-08:00) is unwound into its two non-wrapping halves and the
// halves summed; the halves can never wrap again, so this never goes
// deeper than one level.
func ruleOverlap(entryStart, entryEnd, ruleStart, ruleEnd int) int {
	if ruleEnd < ruleStart {
		return windowOverlap(entryStart, entryEnd, ruleStart, minutesPerDay) +
			windowOverlap(entryStart, entryEnd, 0, ruleEnd)
	}
	return windowOverlap(entryStart, entryEnd, ruleStart, ruleEnd)
}

func windowOverlap(entryStart, entryEnd, windowStart, windowEnd int) int {
	lo := max(entryStart, windowStart)
	hi := min(entryEnd, windowEnd)
	if lo >= hi {
		return 0
	}
	return hi - lo
}
