package telegram

import (
	"fmt"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/go-telegram/bot/models"
)

// monthKeyboard offers the next MonthsAhead months starting from the
// current one, three per row.
func monthKeyboard(now time.Time) *models.InlineKeyboardMarkup {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton

	for i := 0; i < domain.MonthsAhead; i++ {
		month := first.AddDate(0, i, 0)
		row = append(row, models.InlineKeyboardButton{
			Text: month.Format("January"),
			CallbackData: callbackData{
				Step:  stepMonth,
				Year:  month.Year(),
				Month: month.Month(),
				Day:   1,
			}.encode(),
		})
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// dayKeyboard offers every day of the chosen month, hiding days already in
// the past when the current month is selected, plus prev/next month
// navigation.
func dayKeyboard(year int, month time.Month, today time.Time) *models.InlineKeyboardMarkup {
	// day 0 of the next month is the last day of this one
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	isCurrentMonth := year == today.Year() && month == today.Month()

	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton

	for day := 1; day <= lastDay; day++ {
		if isCurrentMonth && day < today.Day() {
			continue
		}
		row = append(row, models.InlineKeyboardButton{
			Text: fmt.Sprintf("%d", day),
			CallbackData: callbackData{
				Step:  stepDay,
				Year:  year,
				Month: month,
				Day:   day,
			}.encode(),
		})
		if len(row) == 7 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	rows = append(rows, []models.InlineKeyboardButton{
		{
			Text:         "<<",
			CallbackData: callbackData{Step: stepMonth, Year: prev.Year(), Month: prev.Month(), Day: 1}.encode(),
		},
		{
			Text:         ">>",
			CallbackData: callbackData{Step: stepMonth, Year: next.Year(), Month: next.Month(), Day: 1}.encode(),
		},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// hourKeyboard offers all 24 hours, six per row.
func hourKeyboard(year int, month time.Month, day int) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton

	for hour := 0; hour < 24; hour++ {
		row = append(row, models.InlineKeyboardButton{
			Text: fmt.Sprintf("%02d", hour),
			CallbackData: callbackData{
				Step:  stepHour,
				Year:  year,
				Month: month,
				Day:   day,
				Hour:  hour,
			}.encode(),
		})
		if len(row) == 6 {
			rows = append(rows, row)
			row = nil
		}
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// minuteKeyboard offers minutes in steps of five, six per row.
func minuteKeyboard(year int, month time.Month, day, hour int) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton

	for minute := 0; minute < 60; minute += 5 {
		row = append(row, models.InlineKeyboardButton{
			Text: fmt.Sprintf("%02d", minute),
			CallbackData: callbackData{
				Step:   stepMinute,
				Year:   year,
				Month:  month,
				Day:    day,
				Hour:   hour,
				Minute: minute,
			}.encode(),
		})
		if len(row) == 6 {
			rows = append(rows, row)
			row = nil
		}
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
