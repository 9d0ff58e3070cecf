package sqlite

import (
	"time"
)

const dateLayout = "2006-01-02"

// FormatDateForDB formats a calendar date as YYYY-MM-DD for consistent database storage
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a YYYY-MM-DD formatted date string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatTimestampForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimestampForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimestampFromDB parses an RFC3339 formatted timestamp string from the database
func ParseTimestampFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
