package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/bullheads/bot"
	"github.com/domino14/bullheads/config"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	log.Info().Str("nats-url", cfg.NatsURL()).Str("channel", cfg.BotChannel()).Msg("loaded config")

	if cfg.Debug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nc, err := nats.Connect(cfg.NatsURL())
	if err != nil {
		log.Fatal().AnErr("natsConnectErr", err).Msg(":(")
	}
	defer nc.Close()

	// Metrics are only exported by the serve command.
	b := bot.NewBot(nil)
	if err := b.Main(ctx, nc, cfg.BotChannel()); err != nil {
		log.Error().Err(err).Msg("bot-exited")
		return
	}
	log.Info().Msg("bot gracefully shutting down")
}
