package timeengine

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses an "HH:mm" clock string into minutes since
// midnight. The sentinel "24:00" parses to 1440 with no special casing.
func TimeToMinutes(clock string) int {
	h, m, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime formats minutes since midnight as a canonical "HH:mm"
// string. Any integer is accepted; values outside 0-1439 are wrapped
// into range first, so the result is always a valid 24-hour clock
// string and never "24:00".
func MinutesToTime(minutes int) string {
	normalized := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", normalized/60, normalized%60)
}

// CalculateDuration returns the minutes between two clock times. An end
// of "24:00" counts as minute 1440. An end at or before the start is
// treated as crossing midnight, so the result is always positive; equal
// endpoints yield a full 1440-minute day.
func CalculateDuration(startTime, endTime string) int {
	start := TimeToMinutes(startTime)
	end := TimeToMinutes(endTime)
	if endTime == EndOfDay {
		end = minutesPerDay
	}
	if end <= start {
		end += minutesPerDay
	}
	return end - start
}
