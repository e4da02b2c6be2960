package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nhl-discord-bot/internal/bot"
	"nhl-discord-bot/internal/config"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg.LogLevel)

	discordBot, err := bot.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := discordBot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start bot")
	}

	log.Info().Str("prefix", cfg.BotPrefix).Msg("NHL Discord bot is now running, press CTRL+C to exit")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	discordBot.Stop()
	log.Info().Msg("bot stopped gracefully")
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
