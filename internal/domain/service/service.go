package service

import (
	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
)

type Instance struct {
	Reminder  *reminderService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, messenger contract.Messenger, geocoder contract.Geocoder) *Instance {
	reminderService := newReminder(dm, geocoder)
	scheduler := newScheduler(dm, messenger)
	reminderService.SetScheduler(scheduler)

	return &Instance{
		Reminder:  reminderService,
		Scheduler: scheduler,
	}
}
