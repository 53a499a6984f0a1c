package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	aibot "github.com/domino14/bullheads/ai/bot"
	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/bot"
	"github.com/domino14/bullheads/game"
)

var (
	moveRemote  bool
	moveTimeout time.Duration
)

var moveCmd = &cobra.Command{
	Use:   "move FILE...",
	Short: "Compute the AI's move for game states stored as JSON or YAML",
	Long: `Reads each file as a game state (YAML if the name ends in .yaml or
.yml, JSON otherwise), makes the AI's move and prints the results as JSON.
With --remote the move is requested from a bot over NATS.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&moveRemote, "remote", false, "ask the NATS bot instead of computing locally")
	moveCmd.Flags().DurationVar(&moveTimeout, "timeout", 10*time.Second, "time limit per remote request")
}

type moveFunc func(ctx context.Context, s game.GameState) (game.GameState, string, error)

type moveResult struct {
	File  string         `json:"file"`
	Move  string         `json:"move"`
	State game.GameState `json:"state"`
}

func localMove(_ context.Context, s game.GameState) (game.GameState, string, error) {
	out, m := aibot.ComputeMove(s)
	return out, m.ShortDescription(), nil
}

// loadState reads and validates a state file. YAML documents are converted
// to JSON first so both formats are checked by api.ParseState.
func loadState(path string) (game.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.GameState{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return game.GameState{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return game.GameState{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	s, err := api.ParseState(data)
	if err != nil {
		return game.GameState{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func runMove(cmd *cobra.Command, args []string) error {
	mover := moveFunc(localMove)
	if moveRemote {
		nc, err := nats.Connect(cfg.NatsURL())
		if err != nil {
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer nc.Close()
		mover = bot.NewClient(nc, cfg.BotChannel()).RequestMove
	}

	results := make([]moveResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			s, err := loadState(path)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, moveTimeout)
			defer cancel()
			out, desc, err := mover(ctx, s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = moveResult{File: path, Move: desc, State: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
