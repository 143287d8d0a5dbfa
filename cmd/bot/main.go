package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/wordvibe/internal/app"
	"github.com/KirkDiggler/wordvibe/internal/config"
	"github.com/KirkDiggler/wordvibe/internal/handlers/discord"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if cfg.DiscordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer a.Close()

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		RoundService:     a.RoundService,
		StatsService:     a.StatsService,
		MessagingService: a.MessagingService,
		GuessLimiter:     a.GuessLimiter,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
}
