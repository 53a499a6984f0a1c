package bot

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/game"
)

type Client struct {
	nc      *nats.Conn
	channel string
}

func NewClient(nc *nats.Conn, channel string) *Client {
	return &Client{nc: nc, channel: channel}
}

// RequestMove sends a game to the bot and gets the resulting game back,
// along with a description of the move.
func (c *Client) RequestMove(ctx context.Context, state game.GameState) (game.GameState, string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return game.GameState{}, "", err
	}
	res, err := c.nc.RequestWithContext(ctx, c.channel, data)
	if err != nil {
		if c.nc.LastError() != nil {
			log.Error().Msgf("%v for request", c.nc.LastError())
		}
		return game.GameState{}, "", err
	}
	log.Debug().Int("bytes", len(res.Data)).Msg("bot-response")
	return decodeResponse(res.Data)
}

func decodeResponse(data []byte) (game.GameState, string, error) {
	var resp api.BotResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return game.GameState{}, "", err
	}
	switch {
	case resp.Error != "":
		return game.GameState{}, "", errors.New("bot returned: " + resp.Error)
	case resp.State == nil:
		return game.GameState{}, "", errors.New("bot returned no state")
	}
	return *resp.State, resp.Move, nil
}
