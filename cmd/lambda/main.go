package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	aibot "github.com/domino14/bullheads/ai/bot"
	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/config"
	"github.com/domino14/bullheads/game"
)

var cfg *config.Config
var nc *nats.Conn

const replyTimeout = 3 * time.Second

func HandleRequest(ctx context.Context, evt api.LambdaEvent) (game.GameState, error) {
	state, err := api.ParseState(evt.State)
	if err != nil {
		log.Info().Err(err).Str("gameID", evt.GameID).Msg("invalid-state")
		return game.GameState{}, err
	}
	logger := log.With().
		Str("gameID", evt.GameID).
		Uint64("fingerprint", game.Fingerprint(state.Cards)).
		Logger()

	out, m := aibot.ComputeMove(state)
	logger.Info().Str("move", m.ShortDescription()).Msg("computed-move")

	if evt.ReplyChannel != "" && nc != nil {
		data, err := json.Marshal(&api.BotResponse{State: &out, Move: m.ShortDescription()})
		if err != nil {
			return out, err
		}
		logger.Info().Msg("move-success-sending-via-nats")
		err = retry.Do(
			func() error {
				// We're just waiting for an acknowledgement. The actual
				// data doesn't matter.
				_, err := nc.Request(evt.ReplyChannel, data, replyTimeout)
				return err
			},
			retry.Context(ctx),
			retry.Attempts(5),
			retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
				logger.Err(err).Uint("n", n).
					Msg("did-not-receive-ack-try-again")
				return retry.BackOffDelay(n, err, config)
			}),
		)
		if err != nil {
			logger.Err(err).Msg("bot-move-reply-failed")
		}
	}
	logger.Info().Msg("exiting-fn")
	return out, nil
}

func main() {
	cfg = config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	if cfg.Debug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var err error
	nc, err = nats.Connect(cfg.NatsURL())
	if err != nil {
		log.Fatal().AnErr("natsConnectErr", err).Msg(":(")
	}
	defer nc.Close()

	lambda.Start(HandleRequest)
}
