package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/voice-reminder-bot/internal/timezone"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type reminderService struct {
	dm        contract.DataManager
	geocoder  contract.Geocoder
	scheduler contract.Scheduler
	log       zerolog.Logger
}

func newReminder(dm contract.DataManager, geocoder contract.Geocoder) *reminderService {
	return &reminderService{
		dm:       dm,
		geocoder: geocoder,
		// Will be set later to avoid circular dependency
		scheduler: nil,
		log:       log.With().Str("component", "reminder").Logger(),
	}
}

func (s *reminderService) SetScheduler(scheduler contract.Scheduler) {
	s.scheduler = scheduler
}

// CreateReminder resolves the owner's local selection into an absolute due
// instant, persists the reminder and arms its delivery task. The store write
// is durable before the scheduler is told about the reminder.
func (s *reminderService) CreateReminder(ctx context.Context, ownerID int64, year int, month time.Month, day, hour, minute int, payloadRef string) (*entity.Reminder, error) {
	tz, err := s.dm.Owner().GetTimezone(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner timezone: %w", err)
	}
	if tz == "" {
		return nil, domain.ErrTimezoneNotSet
	}

	dueAt, err := timezone.Resolve(year, month, day, hour, minute, tz)
	if err != nil {
		return nil, err
	}

	reminder := &entity.Reminder{
		OwnerID:    ownerID,
		PayloadRef: payloadRef,
		DueAt:      dueAt,
	}

	if err := s.dm.Reminder().Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to store reminder: %w", err)
	}

	if err := s.scheduler.Arm(reminder); err != nil {
		// a reminder with no delivery task must not stay in the store
		if delErr := s.dm.Reminder().Delete(ownerID, reminder.ID); delErr != nil {
			s.log.Error().Err(delErr).Int64("reminder_id", reminder.ID).Msg("failed to roll back unarmed reminder")
		}
		return nil, err
	}

	s.log.Info().Int64("owner_id", ownerID).Int64("reminder_id", reminder.ID).Time("due_at", dueAt).Msg("reminder created")
	return reminder, nil
}

// ListReminders returns the owner's pending reminders formatted in their own
// timezone, in creation order.
func (s *reminderService) ListReminders(ctx context.Context, ownerID int64) ([]string, error) {
	tz, err := s.dm.Owner().GetTimezone(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner timezone: %w", err)
	}
	if tz == "" {
		return nil, domain.ErrTimezoneNotSet
	}

	reminders, err := s.dm.Reminder().ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	lines := make([]string, 0, len(reminders))
	for i, reminder := range reminders {
		display, err := timezone.Format(reminder.DueAt, tz)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, display))
	}

	return lines, nil
}

func (s *reminderService) CancelReminder(ctx context.Context, ownerID, reminderID int64) error {
	return s.dm.Reminder().Delete(ownerID, reminderID)
}

// SetOwnerTimezone geocodes a free-text location and persists the resolved
// IANA zone name for the owner. Returns the zone name that was stored.
func (s *reminderService) SetOwnerTimezone(ctx context.Context, ownerID int64, location string) (string, error) {
	tz, err := s.geocoder.LookupTimezone(ctx, location)
	if err != nil {
		return "", err
	}

	// geocoders occasionally return names the local zoneinfo does not know
	if _, err := time.LoadLocation(tz); err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tz)
	}

	if err := s.dm.Owner().SetTimezone(ownerID, tz); err != nil {
		return "", fmt.Errorf("failed to store owner timezone: %w", err)
	}

	s.log.Info().Int64("owner_id", ownerID).Str("timezone", tz).Msg("owner timezone set")
	return tz, nil
}

func (s *reminderService) OwnerTimezone(ctx context.Context, ownerID int64) (string, error) {
	return s.dm.Owner().GetTimezone(ownerID)
}
