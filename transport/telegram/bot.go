// Package telegram is the chat transport: it collects voice notes and date
// selections from owners and delivers voice notes back at fire time.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
	"github.com/go-resty/resty/v2"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	welcomeText = "Welcome to VoiceReminderBot! Send me a voice message and I'll help you set a reminder."

	helpText = "This is a VoiceReminderBot.\n" +
		"Send me a voice message and I'll help you set a reminder.\n" +
		"Use /reminders command to see the list of your reminders.\n" +
		"Use /timezone <city> to set your timezone.\n"

	timezonePromptText = "Please set your timezone using /timezone <city> command."

	genericErrorText = "Something went wrong, please try again."
)

type Bot struct {
	client    *bot.Bot
	http      *resty.Client
	reminders contract.ReminderService
	log       zerolog.Logger
}

func New(token string) (*Bot, error) {
	b := &Bot{
		http: resty.New().SetTimeout(30 * time.Second),
		log:  log.With().Str("component", "telegram").Logger(),
	}

	client, err := bot.New(token, bot.WithDefaultHandler(b.handleDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	b.client = client
	b.registerHandlers()

	return b, nil
}

// SetReminderService wires the domain service in after construction; the
// service needs the bot as its delivery messenger, so neither can be built
// with the other ready.
func (b *Bot) SetReminderService(reminders contract.ReminderService) {
	b.reminders = reminders
}

// Start long-polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	b.client.Start(ctx)
}

func (b *Bot) registerHandlers() {
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, b.handleStart)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, b.handleHelp)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/reminders", bot.MatchTypeExact, b.handleReminders)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/timezone", bot.MatchTypePrefix, b.handleTimezone)
	b.client.RegisterHandler(bot.HandlerTypeCallbackQueryData, callbackPrefix+":", bot.MatchTypePrefix, b.handleDatePick)
}

func (b *Bot) handleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	b.sendText(ctx, update.Message.Chat.ID, welcomeText+"\n"+timezonePromptText)
}

func (b *Bot) handleHelp(ctx context.Context, _ *bot.Bot, update *models.Update) {
	b.sendText(ctx, update.Message.Chat.ID, helpText)
}

func (b *Bot) handleReminders(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	lines, err := b.reminders.ListReminders(ctx, update.Message.From.ID)
	if errors.Is(err, domain.ErrTimezoneNotSet) {
		b.sendText(ctx, chatID, timezonePromptText)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("owner_id", update.Message.From.ID).Msg("failed to list reminders")
		b.sendText(ctx, chatID, genericErrorText)
		return
	}

	if len(lines) == 0 {
		b.sendText(ctx, chatID, "You have no reminders.")
		return
	}

	b.sendText(ctx, chatID, strings.Join(lines, "\n"))
}

func (b *Bot) handleTimezone(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	location := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/timezone"))
	if location == "" {
		b.sendText(ctx, chatID, "Usage: /timezone <city>, for example /timezone Berlin")
		return
	}

	tz, err := b.reminders.SetOwnerTimezone(ctx, update.Message.From.ID, location)
	if errors.Is(err, domain.ErrLocationNotFound) {
		b.sendText(ctx, chatID, "I couldn't find that location. Try the nearest big city instead.")
		return
	}
	if err != nil {
		b.log.Error().Err(err).Str("location", location).Msg("failed to set timezone")
		b.sendText(ctx, chatID, genericErrorText)
		return
	}

	b.sendText(ctx, chatID, fmt.Sprintf("Timezone set to %s.", tz))
}

// handleDefault catches everything without a registered pattern; the only
// update we care about here is an incoming voice note.
func (b *Bot) handleDefault(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Voice == nil {
		return
	}
	b.handleVoice(ctx, update)
}

func (b *Bot) handleVoice(ctx context.Context, update *models.Update) {
	chatID := update.Message.Chat.ID

	tz, err := b.reminders.OwnerTimezone(ctx, update.Message.From.ID)
	if err != nil {
		b.log.Error().Err(err).Int64("owner_id", update.Message.From.ID).Msg("failed to get owner timezone")
		b.sendText(ctx, chatID, genericErrorText)
		return
	}
	if tz == "" {
		b.sendText(ctx, chatID, timezonePromptText)
		return
	}

	// the month keyboard replies to the voice note; the final selection
	// step reads the payload ref back through this reply link
	_, err = b.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          chatID,
		Text:            "Choose the month for the reminder:",
		ReplyMarkup:     monthKeyboard(time.Now()),
		ReplyParameters: &models.ReplyParameters{MessageID: update.Message.ID},
	})
	if err != nil {
		b.log.Error().Err(err).Msg("failed to send month keyboard")
	}
}

func (b *Bot) handleDatePick(ctx context.Context, _ *bot.Bot, update *models.Update) {
	query := update.CallbackQuery

	if _, err := b.client.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	}); err != nil {
		b.log.Warn().Err(err).Msg("failed to answer callback query")
	}

	data, err := parseCallbackData(query.Data)
	if err != nil {
		b.log.Warn().Err(err).Msg("ignoring bad callback data")
		return
	}

	msg := query.Message.Message
	if msg == nil {
		b.log.Warn().Msg("callback message is inaccessible, cannot continue selection")
		return
	}

	switch data.Step {
	case stepMonth:
		b.edit(ctx, msg,
			fmt.Sprintf("Selected %s %d. Choose a day for the reminder:", data.Month, data.Year),
			dayKeyboard(data.Year, data.Month, time.Now()))

	case stepDay:
		b.edit(ctx, msg,
			fmt.Sprintf("Selected %04d-%02d-%02d. Choose an hour for the reminder:", data.Year, data.Month, data.Day),
			hourKeyboard(data.Year, data.Month, data.Day))

	case stepHour:
		b.edit(ctx, msg,
			fmt.Sprintf("Selected %02d:00. Choose the minutes for the reminder:", data.Hour),
			minuteKeyboard(data.Year, data.Month, data.Day, data.Hour))

	case stepMinute:
		b.finishSelection(ctx, query.From.ID, msg, data)
	}
}

func (b *Bot) finishSelection(ctx context.Context, ownerID int64, msg *models.Message, data callbackData) {
	if msg.ReplyToMessage == nil || msg.ReplyToMessage.Voice == nil {
		b.edit(ctx, msg, "I lost track of the voice message for this reminder. Please send it again.", nil)
		return
	}
	payloadRef := msg.ReplyToMessage.Voice.FileID

	_, err := b.reminders.CreateReminder(ctx, ownerID, data.Year, data.Month, data.Day, data.Hour, data.Minute, payloadRef)
	switch {
	case errors.Is(err, domain.ErrTimezoneNotSet):
		b.edit(ctx, msg, timezonePromptText, nil)

	case errors.Is(err, domain.ErrInvalidDate):
		b.edit(ctx, msg, "That date does not exist. Please send the voice message again and pick another one.", nil)

	case err != nil:
		b.log.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to create reminder")
		b.edit(ctx, msg, genericErrorText, nil)

	default:
		b.edit(ctx, msg, fmt.Sprintf(
			"Reminder set for %04d-%02d-%02d %02d:%02d. You'll receive your voice message at the specified time.",
			data.Year, data.Month, data.Day, data.Hour, data.Minute), nil)
	}
}

// FetchPayload downloads the voice bytes behind a Telegram file id. Called
// by the scheduler just before delivery; the bytes are never cached.
func (b *Bot) FetchPayload(ctx context.Context, payloadRef string) ([]byte, error) {
	file, err := b.client.GetFile(ctx, &bot.GetFileParams{FileID: payloadRef})
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	resp, err := b.http.R().SetContext(ctx).Get(b.client.FileDownloadLink(file))
	if err != nil {
		return nil, fmt.Errorf("failed to download voice file: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to download voice file: %s", resp.Status())
	}

	return resp.Body(), nil
}

// SendVoice delivers the voice bytes back to the owner's chat.
func (b *Bot) SendVoice(ctx context.Context, ownerID int64, voice []byte) error {
	_, err := b.client.SendVoice(ctx, &bot.SendVoiceParams{
		ChatID: ownerID,
		Voice: &models.InputFileUpload{
			Filename: "reminder.ogg",
			Data:     bytes.NewReader(voice),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send voice message: %w", err)
	}

	return nil
}

func (b *Bot) sendText(ctx context.Context, chatID int64, text string) {
	if _, err := b.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
	}
}

func (b *Bot) edit(ctx context.Context, msg *models.Message, text string, markup models.ReplyMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.client.EditMessageText(ctx, params); err != nil {
		b.log.Error().Err(err).Msg("failed to edit message")
	}
}
