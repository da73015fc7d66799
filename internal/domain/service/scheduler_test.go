package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWaitTimeout = 3 * time.Second

func newTestScheduler(m allMocks) *scheduler {
	s := newScheduler(m.mockDataManager, m.mockMessenger)
	s.retryBackoff = time.Millisecond
	return s
}

func waitSignal(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(testWaitTimeout):
		t.Fatal(msg)
	}
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newScheduler(m.mockDataManager, m.mockMessenger)

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockMessenger, s.messenger)
	assert.NotNil(t, s.stopChan)
	assert.Equal(t, domain.MaxDeliveryAttempts, s.maxAttempts)
	assert.Equal(t, domain.RetryBackoffBase, s.retryBackoff)
}

func Test_scheduler_Arm_Malformed(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)
	defer s.Stop()

	tests := []struct {
		name     string
		reminder *entity.Reminder
	}{
		{name: "nil reminder", reminder: nil},
		{name: "missing id", reminder: &entity.Reminder{OwnerID: 1, PayloadRef: "clip"}},
		{name: "missing owner", reminder: &entity.Reminder{ID: 1, PayloadRef: "clip"}},
		{name: "missing payload ref", reminder: &entity.Reminder{ID: 1, OwnerID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Arm(tt.reminder)
			require.ErrorIs(t, err, domain.ErrMalformedReminder)
		})
	}
}

func Test_scheduler_PastDueFiresImmediately(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         7,
		OwnerID:    42,
		PayloadRef: "clip1",
		DueAt:      time.Now().Add(-time.Hour),
	}
	voice := []byte("ogg-bytes")
	removed := make(chan struct{})

	m.mockReminderRepo.EXPECT().GetByID(int64(42), int64(7)).Return(reminder, nil)
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "clip1").Return(voice, nil)
	m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(42), voice).Return(nil)
	m.mockReminderRepo.EXPECT().Delete(int64(42), int64(7)).DoAndReturn(func(int64, int64) error {
		close(removed)
		return nil
	})

	require.NoError(t, s.Arm(reminder))

	waitSignal(t, removed, "past-due reminder did not fire within the bounded delay")
	s.Stop()
}

func Test_scheduler_FiresAtDueInstant(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         1,
		OwnerID:    10,
		PayloadRef: "clip",
		DueAt:      time.Now().Add(50 * time.Millisecond),
	}
	voice := []byte("voice")
	removed := make(chan struct{})

	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).Return(reminder, nil)
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "clip").Return(voice, nil)
	m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(10), voice).Return(nil)
	m.mockReminderRepo.EXPECT().Delete(int64(10), int64(1)).DoAndReturn(func(int64, int64) error {
		close(removed)
		return nil
	})

	require.NoError(t, s.Arm(reminder))

	waitSignal(t, removed, "reminder did not fire at its due instant")
	s.Stop()
}

func Test_scheduler_SkipsDeliveryWhenReminderWasRemoved(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         1,
		OwnerID:    10,
		PayloadRef: "clip",
		DueAt:      time.Now().Add(-time.Second),
	}
	checked := make(chan struct{})

	// a concurrent cancellation removed the reminder while the task slept;
	// no delivery, no removal attempt
	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).DoAndReturn(func(int64, int64) (*entity.Reminder, error) {
		close(checked)
		return nil, nil
	})

	require.NoError(t, s.Arm(reminder))

	waitSignal(t, checked, "task never re-checked the store")
	s.Stop()
}

func Test_scheduler_RetriesThenDelivers(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         1,
		OwnerID:    10,
		PayloadRef: "clip",
		DueAt:      time.Now().Add(-time.Second),
	}
	voice := []byte("voice")
	removed := make(chan struct{})

	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).Return(reminder, nil)
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "clip").Return(voice, nil).Times(3)

	// two failures, then success on the third attempt: exactly one removal
	gomock.InOrder(
		m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(10), voice).Return(errors.New("transport unavailable")).Times(2),
		m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(10), voice).Return(nil),
	)
	m.mockReminderRepo.EXPECT().Delete(int64(10), int64(1)).DoAndReturn(func(int64, int64) error {
		close(removed)
		return nil
	})

	require.NoError(t, s.Arm(reminder))

	waitSignal(t, removed, "reminder was not removed after successful retry")
	s.Stop()
}

func Test_scheduler_RemovesReminderAfterRetryExhaustion(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         1,
		OwnerID:    10,
		PayloadRef: "clip",
		DueAt:      time.Now().Add(-time.Second),
	}
	removed := make(chan struct{})

	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).Return(reminder, nil)
	// payload fetch failing counts as a delivery attempt
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "clip").Return(nil, errors.New("file gone")).Times(domain.MaxDeliveryAttempts)
	m.mockReminderRepo.EXPECT().Delete(int64(10), int64(1)).DoAndReturn(func(int64, int64) error {
		close(removed)
		return nil
	})

	require.NoError(t, s.Arm(reminder))

	waitSignal(t, removed, "reminder was not removed after retry exhaustion")
	s.Stop()
}

func Test_scheduler_SameInstantRemindersBothFire(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	due := time.Now().Add(30 * time.Millisecond)
	first := &entity.Reminder{ID: 1, OwnerID: 10, PayloadRef: "same-clip", DueAt: due}
	second := &entity.Reminder{ID: 2, OwnerID: 10, PayloadRef: "same-clip", DueAt: due}
	voice := []byte("voice")

	delivered := make(chan int64, 2)

	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).Return(first, nil)
	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(2)).Return(second, nil)
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "same-clip").Return(voice, nil).Times(2)
	m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(10), voice).Return(nil).Times(2)
	m.mockReminderRepo.EXPECT().Delete(int64(10), gomock.Any()).DoAndReturn(func(_, reminderID int64) error {
		delivered <- reminderID
		return nil
	}).Times(2)

	require.NoError(t, s.Arm(first))
	require.NoError(t, s.Arm(second))

	ids := map[int64]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-delivered:
			ids[id] = true
		case <-time.After(testWaitTimeout):
			t.Fatal("expected both same-instant reminders to fire")
		}
	}
	assert.Len(t, ids, 2, "both reminders must deliver, in either order")

	s.Stop()
}

func Test_scheduler_StopAbandonsPendingTasks(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	reminder := &entity.Reminder{
		ID:         1,
		OwnerID:    10,
		PayloadRef: "clip",
		DueAt:      time.Now().Add(time.Hour),
	}

	// no store or messenger expectations: the task must exit without
	// touching either
	require.NoError(t, s.Arm(reminder))

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	waitSignal(t, done, "Stop did not return after abandoning tasks")
}

func Test_scheduler_Rearm(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	valid := &entity.Reminder{ID: 1, OwnerID: 10, PayloadRef: "clip", DueAt: time.Now().Add(-time.Minute)}
	// a corrupt row must be dropped without aborting the scan
	malformed := &entity.Reminder{ID: 2, OwnerID: 10, PayloadRef: "", DueAt: time.Now().Add(-time.Minute)}
	voice := []byte("voice")
	removed := make(chan struct{})

	m.mockReminderRepo.EXPECT().ListAll().Return([]*entity.Reminder{valid, malformed}, nil)
	m.mockReminderRepo.EXPECT().GetByID(int64(10), int64(1)).Return(valid, nil)
	m.mockMessenger.EXPECT().FetchPayload(gomock.Any(), "clip").Return(voice, nil)
	m.mockMessenger.EXPECT().SendVoice(gomock.Any(), int64(10), voice).Return(nil)
	m.mockReminderRepo.EXPECT().Delete(int64(10), int64(1)).DoAndReturn(func(int64, int64) error {
		close(removed)
		return nil
	})

	require.NoError(t, s.Rearm(context.Background()))

	waitSignal(t, removed, "re-armed past-due reminder did not fire")
	s.Stop()
}

func Test_scheduler_Rearm_StoreUnreachable(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)
	defer s.Stop()

	m.mockReminderRepo.EXPECT().ListAll().Return(nil, errors.New("database locked"))

	err := s.Rearm(context.Background())
	require.Error(t, err)
}

func Test_scheduler_StopIsIdempotent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m)

	s.Stop()
	s.Stop()
}
