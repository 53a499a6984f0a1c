package game

import "github.com/samber/lo"

// BullHeads maps a card's face value to its penalty weight. The checks are
// ordered; the first one that matches wins, so 55 is worth 7 and not 5, and
// multiples of ten are worth 3 and not 2.
func BullHeads(cardNumber int) int {
	switch {
	case cardNumber == 55:
		return 7
	case cardNumber%10 == 0:
		return 3
	case cardNumber%11 == 0:
		return 5
	case cardNumber%5 == 0:
		return 2
	}
	return 1
}

// TotalBullHeads sums the penalty weight of the given cards.
func TotalBullHeads(cards []Card) int {
	return lo.SumBy(cards, func(c Card) int {
		return c.BullHeads()
	})
}

// RowPenalty is the total penalty of all cards currently in the given row.
func RowPenalty(cards []Card, row int) int {
	return TotalBullHeads(CardsInRow(cards, row))
}
