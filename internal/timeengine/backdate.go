package timeengine

import (
	"fmt"
	"time"
)

// ValidateBackdateLimit bounds-checks an entry date against "now" and
// an allowed look-back window. Both dates are truncated to day
// boundaries first; today and exactly limitDays ago are both valid.
// Failures come back as a result with a caller-facing message rather
// than an error, leaving status and wording decisions upstream.
func ValidateBackdateLimit(entryDate time.Time, backdateLimitDays int, now time.Time) BackdateValidation {
	today := StartOfDay(now)
	entryDay := StartOfDay(entryDate)

	if entryDay.After(today) {
		return BackdateValidation{
			Message: "cannot create time entries for future dates",
		}
	}

	earliestAllowed := today.AddDate(0, 0, -backdateLimitDays)
	if entryDay.Before(earliestAllowed) {
		return BackdateValidation{
			Message: fmt.Sprintf("cannot create time entries older than %d days", backdateLimitDays),
		}
	}

	return BackdateValidation{Valid: true}
}
