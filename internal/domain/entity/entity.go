package entity

import "time"

// Reminder is a pending voice-note delivery. DueAt is an absolute instant,
// derived once from the owner's local selection and timezone at creation
// time and immutable afterwards. PayloadRef is the transport handle used to
// re-fetch the voice bytes at delivery time; it is not unique per owner, so
// the generated ID is the only removal key.
type Reminder struct {
	ID         int64
	OwnerID    int64
	PayloadRef string
	DueAt      time.Time
	CreatedAt  time.Time
}

// OwnerProfile holds per-owner settings. Timezone is an IANA zone name,
// created on first successful /timezone lookup and never expired.
type OwnerProfile struct {
	OwnerID   int64
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
