package contract

import (
	"context"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
)

type ReminderService interface {
	CreateReminder(ctx context.Context, ownerID int64, year int, month time.Month, day, hour, minute int, payloadRef string) (*entity.Reminder, error)
	ListReminders(ctx context.Context, ownerID int64) ([]string, error)
	CancelReminder(ctx context.Context, ownerID, reminderID int64) error
	SetOwnerTimezone(ctx context.Context, ownerID int64, location string) (string, error)
	OwnerTimezone(ctx context.Context, ownerID int64) (string, error)
}

// Scheduler owns one wait-task per pending reminder.
type Scheduler interface {
	// Arm validates the reminder and starts its delivery task. A due
	// instant in the past is not an error; the task fires immediately.
	Arm(reminder *entity.Reminder) error

	// Rearm scans the store and arms every pending reminder.
	Rearm(ctx context.Context) error

	// Stop abandons all in-flight tasks without delivering.
	Stop()
}
