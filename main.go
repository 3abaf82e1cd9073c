package main

import (
	"clanbot/internal/bot"
	"clanbot/internal/cocapi"
	"clanbot/internal/config"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Configuration. Without credentials there is nothing to connect to
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Info().Msgf("Tracking clan %s", cfg.ClanTag)

	// Clash of Clans API
	api := cocapi.New(cfg.CocAPIURL, cfg.CocAPIKey)

	// Create bot
	clanbot, err := bot.New(cfg, api)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create discord bot")
	}

	// Run until interrupted (ctrl + C)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := clanbot.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Bot stopped with an error")
		stop()
		os.Exit(1)
	}
}
