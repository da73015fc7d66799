// Package timezone converts between an owner's local civil time and the
// absolute instant a reminder fires at.
package timezone

import (
	"fmt"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
)

// Resolve converts local calendar fields plus an IANA zone name into the
// absolute UTC instant they describe.
//
// Daylight-saving policy: civil times are resolved with Go's time.Date
// rule — a time inside a spring-forward gap is moved forward across the
// transition, and an ambiguous fall-back time takes the first applicable
// UTC offset. The branch is never chosen silently per caller; it is fixed
// here for the whole system.
func Resolve(year int, month time.Month, day, hour, minute int, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tzName)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d is not a valid time of day", domain.ErrInvalidDate, hour, minute)
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, loc)

	// time.Date normalizes out-of-range calendar fields (Feb 30 becomes
	// Mar 1), so a changed date means the input was never a real day.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", domain.ErrInvalidDate, year, month, day)
	}

	return t.UTC(), nil
}

// Format renders an absolute instant in the given zone for list views.
func Format(instant time.Time, tzName string) (string, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tzName)
	}

	return instant.In(loc).Format(domain.DisplayTimeLayout), nil
}
