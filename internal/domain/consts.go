package domain

import (
	"errors"
	"time"
)

// DisplayTimeLayout is the format for reminder timestamps shown to the
// owner, always rendered in the owner's own timezone.
const DisplayTimeLayout = "2006-01-02 15:04"

// Delivery retry policy. Attempts beyond the first wait
// RetryBackoffBase, doubling each time.
const (
	MaxDeliveryAttempts = 3
	RetryBackoffBase    = 2 * time.Second
)

// MonthsAhead is how far into the future the date picker offers months.
const MonthsAhead = 12

var (
	// ErrInvalidTimezone means the given name is not a recognized IANA zone.
	ErrInvalidTimezone = errors.New("unknown timezone name")

	// ErrInvalidDate means the calendar fields do not form a valid date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotFound means the reminder does not exist for that owner.
	ErrNotFound = errors.New("reminder not found")

	// ErrTimezoneNotSet means the owner has no stored timezone yet.
	ErrTimezoneNotSet = errors.New("owner timezone is not set")

	// ErrLocationNotFound means the geocoder could not resolve the location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrMalformedReminder means a reminder could not be armed because its
	// owner or payload reference is missing. Raised at arm time, never
	// deferred to fire time.
	ErrMalformedReminder = errors.New("malformed reminder")
)
