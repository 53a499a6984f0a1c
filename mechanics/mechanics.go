// Package mechanics applies an AI move to the table: placing cards on rows
// and sending overflowing or sacrificed rows to the bull-head stack.
package mechanics

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/move"
)

// Collect takes every card in row and puts it in the AI's bull-head stack,
// charging their bull heads to the AI's match and round scores. cards is
// modified in place; the updated scoreboard and the collected cards are
// returned.
func Collect(cards []game.Card, row int, sb game.Scoreboard) (game.Scoreboard, []game.Card) {
	var collected []game.Card
	for i := range cards {
		if cards[i].RowNumber != row {
			continue
		}
		cards[i].RowNumber = game.HandRow
		cards[i].IsInBullHeadStack = true
		sb = sb.AddAIPenalty(cards[i].BullHeads())
		collected = append(collected, cards[i])
	}
	return sb, collected
}

// place moves the AI's playable card with the given number onto row. It
// returns false if the AI holds no such card.
func place(cards []game.Card, cardNumber, row int) bool {
	for i := range cards {
		if cards[i].CardNumber == cardNumber && cards[i].Playable() {
			cards[i].RowNumber = row
			return true
		}
	}
	return false
}

// Apply plays m on cards, which is modified in place, and returns the
// updated scoreboard. The cards and penalty the AI collected are recorded
// on m. No row is left holding game.MaxRowLength cards.
func Apply(cards []game.Card, sb game.Scoreboard, m *move.Move) game.Scoreboard {
	var collected []game.Card

	switch m.Action() {
	case move.MoveTypeSacrifice:
		sb, collected = Collect(cards, m.Row(), sb)
		if m.Card() != 0 && !place(cards, m.Card(), m.Row()) {
			log.Warn().Int("card", m.Card()).Msg("sacrifice-card-not-in-hand")
		}

	case move.MoveTypeExtend:
		if !place(cards, m.Card(), m.Row()) {
			log.Warn().Int("card", m.Card()).Msg("extend-card-not-in-hand")
			break
		}
		if game.RowLength(cards, m.Row()) == game.MaxRowLength {
			log.Debug().Int("row", m.Row()).Msg("row-overflow")
			sb, collected = Collect(cards, m.Row(), sb)
		}

	case move.MoveTypePass:
	}

	if len(collected) > 0 {
		log.Debug().
			Int("row", m.Row()).
			Strs("cards", lo.Map(collected, func(c game.Card, _ int) string {
				return c.String()
			})).
			Msg("row-collected")
		nums := make([]int, len(collected))
		for i, c := range collected {
			nums[i] = c.CardNumber
		}
		m.SetCollected(nums, game.TotalBullHeads(collected))
	}
	return sb
}
