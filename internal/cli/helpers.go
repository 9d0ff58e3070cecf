package cli

import (
	"fmt"
	"time"

	"timeclock/internal/errors"
	"timeclock/internal/timeengine"
)

// parseDate parses a calendar date argument. Besides YYYY-MM-DD it
// accepts "today" and "yesterday" for convenience.
func parseDate(value string) (time.Time, error) {
	switch value {
	case "", "today":
		return timeengine.StartOfDay(time.Now()), nil
	case "yesterday":
		return timeengine.StartOfDay(time.Now()).AddDate(0, 0, -1), nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", value, "expected YYYY-MM-DD, today or yesterday")
	}
	return date, nil
}

// formatMinutes renders a minute count as "8h 30m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
