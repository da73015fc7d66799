package service

import (
	"testing"

	"github.com/diegoclair/voice-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockReminderRepo *mocks.MockReminderRepo
	mockOwnerRepo    *mocks.MockOwnerRepo
	mockMessenger    *mocks.MockMessenger
	mockGeocoder     *mocks.MockGeocoder
	mockScheduler    *mocks.MockScheduler
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	ownerRepo := mocks.NewMockOwnerRepo(ctrl)
	dm.EXPECT().Owner().Return(ownerRepo).AnyTimes()

	messenger := mocks.NewMockMessenger(ctrl)
	geocoder := mocks.NewMockGeocoder(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockReminderRepo: reminderRepo,
		mockOwnerRepo:    ownerRepo,
		mockMessenger:    messenger,
		mockGeocoder:     geocoder,
		mockScheduler:    scheduler,
	}

	// validate service creation
	reminderService := newReminder(dm, geocoder)
	require.NotNil(t, reminderService)

	return
}
