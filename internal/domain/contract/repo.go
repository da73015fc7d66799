package contract

import (
	"context"

	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
	Owner() OwnerRepo
}

// ReminderRepo defines the contract for the reminder repository.
// Mutations are durable before the call returns.
type ReminderRepo interface {
	// Create persists the reminder and sets its generated ID.
	Create(reminder *entity.Reminder) error

	// GetByID returns nil, nil when the reminder does not exist.
	GetByID(ownerID, reminderID int64) (*entity.Reminder, error)

	// ListByOwner returns the owner's reminders in creation order.
	ListByOwner(ownerID int64) ([]*entity.Reminder, error)

	// ListAll returns every stored reminder, used to re-arm on startup.
	ListAll() ([]*entity.Reminder, error)

	// Delete removes exactly one reminder by its generated id and returns
	// domain.ErrNotFound when it is already gone.
	Delete(ownerID, reminderID int64) error
}

// OwnerRepo defines the contract for owner profile storage
type OwnerRepo interface {
	// GetTimezone returns an empty string when the owner has no profile.
	GetTimezone(ownerID int64) (string, error)
	SetTimezone(ownerID int64, timezone string) error
}
