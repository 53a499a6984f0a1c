package bot

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/move"
)

// LowestRowStrategy is the only AI. If its best card is too low to go on
// any row it takes the cheapest row; otherwise it plays onto whichever
// row has the lowest top card, not the row whose top card is closest
// below the played card as the table rules would normally require.
type LowestRowStrategy struct{}

func (s *LowestRowStrategy) Name() string {
	return "lowest-row"
}

// MustSacrifice is true when the AI's highest playable card is lower than
// the top card of every row. Empty rows have a top card of 0 and an empty
// hand has a best card of 0, so a table with an empty row never forces a
// sacrifice.
func MustSacrifice(cards []game.Card) bool {
	maxima := game.RowMaxima(cards)
	return game.HandMax(cards) < lo.Min(maxima[:])
}

// lowestRow returns the row number whose value is smallest. Ties go to the
// lowest row number.
func lowestRow(vals [game.NumRows]int) int {
	best := 0
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[best] {
			best = i
		}
	}
	return best + 1
}

func (s *LowestRowStrategy) GenerateMove(cards []game.Card) *move.Move {
	if MustSacrifice(cards) {
		return s.sacrifice(cards)
	}
	return s.extend(cards)
}

// sacrifice takes the row with the fewest bull heads and restarts it with
// the AI's lowest card.
func (s *LowestRowStrategy) sacrifice(cards []game.Card) *move.Move {
	var penalties [game.NumRows]int
	for i := range penalties {
		penalties[i] = game.RowPenalty(cards, i+1)
	}
	row := lowestRow(penalties)
	card := game.HandMin(cards)
	log.Debug().Ints("penalties", penalties[:]).Int("row", row).Int("card", card).
		Msg("forced-sacrifice")
	return move.NewSacrificeMove(row, card)
}

// extend plays the AI's lowest card that beats the lowest top card onto
// that row. If no card beats it the AI passes.
func (s *LowestRowStrategy) extend(cards []game.Card) *move.Move {
	maxima := game.RowMaxima(cards)
	target := lowestRow(maxima)
	threshold := maxima[target-1]

	for _, c := range game.Hand(cards) {
		if c.CardNumber > threshold {
			log.Debug().Ints("maxima", maxima[:]).Int("row", target).Int("card", c.CardNumber).
				Msg("greedy-extend")
			return move.NewExtendMove(target, c.CardNumber)
		}
	}
	log.Debug().Ints("maxima", maxima[:]).Int("row", target).Msg("no-card-above-threshold")
	return move.NewPassMove(target)
}
