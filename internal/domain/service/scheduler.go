package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// errStopped aborts a delivery attempt during shutdown. The reminder stays
// in the store so the next startup re-arms it.
var errStopped = errors.New("scheduler stopped")

// scheduler runs one wait-task goroutine per pending reminder. Each task
// waits until its due instant, delivers the voice note through the messenger
// with bounded retries, then removes the reminder from the store. Tasks are
// fully independent: one reminder's failure never touches another's.
type scheduler struct {
	dm        contract.DataManager
	messenger contract.Messenger
	log       zerolog.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	tasks    sync.WaitGroup

	// overridable in tests
	maxAttempts  int
	retryBackoff time.Duration
}

func newScheduler(dm contract.DataManager, messenger contract.Messenger) *scheduler {
	return &scheduler{
		dm:           dm,
		messenger:    messenger,
		log:          log.With().Str("component", "scheduler").Logger(),
		stopChan:     make(chan struct{}),
		maxAttempts:  domain.MaxDeliveryAttempts,
		retryBackoff: domain.RetryBackoffBase,
	}
}

// Arm starts the wait-task for a stored reminder. Malformed reminders are
// rejected synchronously; a due instant in the past is fine and fires
// immediately.
func (s *scheduler) Arm(reminder *entity.Reminder) error {
	if reminder == nil || reminder.ID == 0 || reminder.OwnerID == 0 || reminder.PayloadRef == "" {
		return fmt.Errorf("%w: missing id, owner or payload reference", domain.ErrMalformedReminder)
	}

	s.tasks.Add(1)
	go s.run(reminder)
	return nil
}

// Rearm scans the store and arms every pending reminder. Reminders whose
// due instant passed while the process was down fire immediately.
func (s *scheduler) Rearm(ctx context.Context) error {
	reminders, err := s.dm.Reminder().ListAll()
	if err != nil {
		return fmt.Errorf("failed to scan pending reminders: %w", err)
	}

	armed := 0
	for _, reminder := range reminders {
		if err := s.Arm(reminder); err != nil {
			// fatal for this single reminder only
			s.log.Error().Err(err).Int64("reminder_id", reminder.ID).Msg("dropping reminder that cannot be armed")
			continue
		}
		armed++
	}

	s.log.Info().Int("count", armed).Msg("re-armed pending reminders")
	return nil
}

// Stop abandons all in-flight wait-tasks without delivering and blocks
// until they have exited.
func (s *scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.tasks.Wait()
	s.log.Info().Msg("scheduler stopped")
}

func (s *scheduler) run(reminder *entity.Reminder) {
	defer s.tasks.Done()

	// re-sample the clock right before suspending; the due instant is
	// absolute, so a pre-computed duration would drift under clock changes
	wait := time.Until(reminder.DueAt)
	if wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-s.stopChan:
			timer.Stop()
			return
		}
	}

	s.fire(reminder)
}

func (s *scheduler) fire(reminder *entity.Reminder) {
	logger := s.log.With().Int64("owner_id", reminder.OwnerID).Int64("reminder_id", reminder.ID).Logger()

	// a concurrent cancellation may have removed the reminder while this
	// task was suspended
	stored, err := s.dm.Reminder().GetByID(reminder.OwnerID, reminder.ID)
	if err != nil {
		// leave the reminder in place; the next startup re-arms it
		logger.Error().Err(err).Msg("failed to re-check reminder before delivery")
		return
	}
	if stored == nil {
		logger.Debug().Msg("reminder removed before firing, exiting without delivery")
		return
	}

	if err := s.deliver(reminder); err != nil {
		if errors.Is(err, errStopped) {
			return
		}
		// best effort exhausted: the reminder is still removed below
		logger.Error().Err(err).Int("attempts", s.maxAttempts).Msg("giving up on delivery")
	} else {
		logger.Info().Msg("reminder delivered")
	}

	if err := s.dm.Reminder().Delete(reminder.OwnerID, reminder.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// benign race with a concurrent removal
			logger.Debug().Msg("reminder already removed")
			return
		}
		logger.Error().Err(err).Msg("failed to remove delivered reminder")
	}
}

func (s *scheduler) deliver(reminder *entity.Reminder) error {
	ctx := context.Background()
	backoff := s.retryBackoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(backoff):
			case <-s.stopChan:
				return errStopped
			}
			backoff *= 2
		}

		// fetched fresh on every attempt and discarded after sending
		voice, err := s.messenger.FetchPayload(ctx, reminder.PayloadRef)
		if err != nil {
			lastErr = fmt.Errorf("failed to fetch payload: %w", err)
			s.log.Warn().Err(err).Int64("reminder_id", reminder.ID).Int("attempt", attempt).Msg("payload fetch failed")
			continue
		}

		if err := s.messenger.SendVoice(ctx, reminder.OwnerID, voice); err != nil {
			lastErr = fmt.Errorf("failed to send voice: %w", err)
			s.log.Warn().Err(err).Int64("reminder_id", reminder.ID).Int("attempt", attempt).Msg("delivery failed")
			continue
		}

		return nil
	}

	return lastErr
}
