package contract

import "context"

// Messenger is the chat-transport surface the core needs at delivery time.
// This allows mocking in tests while keeping the real implementation simple
type Messenger interface {
	// FetchPayload downloads the voice bytes behind a payload reference.
	// The bytes are fetched just before delivery and never cached.
	FetchPayload(ctx context.Context, payloadRef string) ([]byte, error)

	// SendVoice delivers the voice bytes back to the owner.
	SendVoice(ctx context.Context, ownerID int64, voice []byte) error
}

// Geocoder resolves a free-text location to an IANA timezone name.
type Geocoder interface {
	LookupTimezone(ctx context.Context, location string) (string, error)
}
