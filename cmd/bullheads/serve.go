package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/bullheads/bot"
	"github.com/domino14/bullheads/metrics"
	"github.com/domino14/bullheads/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer move requests over HTTP, and over NATS with --serve-nats",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: server.NewRouter(cfg.CORSOrigins(), m, reg),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("http-listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("got quit signal...")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if cfg.ServeNats() {
		nc, err := nats.Connect(cfg.NatsURL())
		if err != nil {
			stop()
			_ = g.Wait()
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer nc.Close()
		b := bot.NewBot(m)
		g.Go(func() error {
			return b.Main(ctx, nc, cfg.BotChannel())
		})
	}

	err := g.Wait()
	log.Info().Msg("server gracefully shut down")
	return err
}
