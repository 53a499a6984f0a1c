package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/move"
)

// Algo is the value of the aiAlgo field of a game state.
type Algo int

const (
	// AlgoLowestRow always plays onto the row with the lowest top card.
	AlgoLowestRow Algo = 0
)

// Strategy picks the AI's next move from the cards on the table and in
// its hand. It does not modify cards.
type Strategy interface {
	Name() string
	GenerateMove(cards []game.Card) *move.Move
}

// NewStrategy returns the strategy selected by aiAlgo. There is only one
// strategy, so every value resolves to it.
func NewStrategy(algo int) Strategy {
	switch Algo(algo) {
	case AlgoLowestRow:
	default:
		log.Debug().Int("ai-algo", algo).Msg("unknown-ai-algo-using-lowest-row")
	}
	return &LowestRowStrategy{}
}
