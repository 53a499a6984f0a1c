package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/mechanics"
	"github.com/domino14/bullheads/move"
)

// ComputeMove makes the AI's move on state and returns the resulting
// state along with the move that was made. state itself is not modified.
func ComputeMove(state game.GameState) (game.GameState, *move.Move) {
	cards, sb := state.Snapshot()

	strategy := NewStrategy(sb.AIAlgo)
	m := strategy.GenerateMove(cards)
	sb = mechanics.Apply(cards, sb, m)

	log.Debug().
		Str("strategy", strategy.Name()).
		Str("move", m.ShortDescription()).
		Int("ai-score", sb.AIScore).
		Int("round", sb.Round).
		Int("ai-round-score", sb.AIRoundScore()).
		Msg("computed-move")

	return game.Assemble(sb, cards), m
}
