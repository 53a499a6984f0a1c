package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"

	"github.com/domino14/bullheads/game"
)

const testChannel = "bullheads.test.bot"

// requestUntilReady retries while the bot's subscription is not yet live.
func requestUntilReady(c *Client, s game.GameState) (game.GameState, string, error) {
	deadline := time.Now().Add(5 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		out, desc, err := c.RequestMove(ctx, s)
		cancel()
		if !errors.Is(err, nats.ErrNoResponders) || time.Now().After(deadline) {
			return out, desc, err
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestMainRoundTrip(t *testing.T) {
	is := is.New(t)
	srv := natsserver.RunRandClientPortServer()
	defer srv.Shutdown()

	botConn, err := nats.Connect(srv.ClientURL())
	is.NoErr(err)
	defer botConn.Close()
	clientConn, err := nats.Connect(srv.ClientURL())
	is.NoErr(err)
	defer clientConn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewBot(nil).Main(ctx, botConn, testChannel)
	}()

	client := NewClient(clientConn, testChannel)
	out, desc, err := requestUntilReady(client, extendState())
	is.NoErr(err)
	is.Equal(desc, "5 -> row 1")
	is.Equal(out.Cards[1].RowNumber, 1)
	is.Equal(out.Round, 1)
	is.True(out.HasStarted)

	// an invalid state comes back as an error, not a move
	res, err := clientConn.Request(testChannel, []byte(`{"round": 1, "cards": []}`), time.Second)
	is.NoErr(err)
	_, _, err = decodeResponse(res.Data)
	is.True(strings.Contains(err.Error(), "invalid fields"))

	cancel()
	select {
	case err := <-done:
		is.NoErr(err)
	case <-time.After(5 * time.Second):
		t.Fatal("Main did not return after cancel")
	}
}
