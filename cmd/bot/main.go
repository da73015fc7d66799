package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegoclair/voice-reminder-bot/internal/config"
	"github.com/diegoclair/voice-reminder-bot/internal/database"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/service"
	"github.com/diegoclair/voice-reminder-bot/internal/geocoding"
	"github.com/diegoclair/voice-reminder-bot/migrator/sqlite"
	"github.com/diegoclair/voice-reminder-bot/transport/telegram"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations completed successfully")

	dm := database.NewInstance(db)

	tgBot, err := telegram.New(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}

	geocoder := geocoding.New(cfg.GeocodingBaseURL)

	services := service.NewInstance(dm, tgBot, geocoder)
	tgBot.SetReminderService(services.Reminder)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// reminders that came due while the process was down fire immediately
	if err := services.Scheduler.Rearm(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to re-arm pending reminders")
	}
	defer services.Scheduler.Stop()

	log.Info().Msg("bot started")
	tgBot.Start(ctx)
}
