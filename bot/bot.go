package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	aibot "github.com/domino14/bullheads/ai/bot"
	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/metrics"
)

const transportNATS = "nats"

// Bot answers move requests arriving on a NATS subject.
type Bot struct {
	metrics *metrics.Metrics
}

func NewBot(m *metrics.Metrics) *Bot {
	return &Bot{metrics: m}
}

func errorResponse(message string, err error) *api.BotResponse {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &api.BotResponse{Error: msg}
}

// Deserialize decodes and validates a game state.
func (bot *Bot) Deserialize(data []byte) (game.GameState, error) {
	return api.ParseState(data)
}

func (bot *Bot) handle(data []byte) *api.BotResponse {
	started := time.Now()
	state, err := bot.Deserialize(data)
	if err != nil {
		bot.metrics.ObserveRequest(transportNATS, "invalid", started)
		return errorResponse("could not parse request", err)
	}
	out, m := aibot.ComputeMove(state)
	log.Info().
		Uint64("fingerprint", game.Fingerprint(state.Cards)).
		Str("move", m.ShortDescription()).
		Msg("generated-move")
	bot.metrics.ObserveMove(m)
	bot.metrics.ObserveRequest(transportNATS, "ok", started)
	return &api.BotResponse{State: &out, Move: m.ShortDescription()}
}

// Main answers requests on channel until ctx is done, then drains the
// subscription.
func (bot *Bot) Main(ctx context.Context, nc *nats.Conn, channel string) error {
	sub, err := nc.Subscribe(channel, func(m *nats.Msg) {
		log.Debug().Int("bytes", len(m.Data)).Msg("recv")
		resp := bot.handle(m.Data)
		data, err := json.Marshal(resp)
		if err != nil {
			// Should never happen, ideally, but we need to answer something.
			data = []byte(`{"error":"could not encode response"}`)
		}
		if err := m.Respond(data); err != nil {
			log.Err(err).Msg("respond-failed")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Str("channel", channel).Msg("listening")

	<-ctx.Done()
	log.Info().Str("channel", channel).Msg("draining")
	return sub.Drain()
}
