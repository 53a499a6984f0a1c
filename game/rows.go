package game

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// maxOrZero returns the largest value, or 0 if there are none. An empty
// row has a top card of 0 and an empty hand has a best card of 0; the
// strategy depends on these defaults, so every aggregate over a possibly
// empty selection goes through here or minOrZero.
func maxOrZero(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	return lo.Max(vals)
}

// minOrZero returns the smallest value, or 0 if there are none.
func minOrZero(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	return lo.Min(vals)
}

func cardNumbers(cards []Card) []int {
	return lo.Map(cards, func(c Card, _ int) int {
		return c.CardNumber
	})
}

// CardsInRow returns copies of the cards assigned to the given row, in
// the order they appear in the state.
func CardsInRow(cards []Card, row int) []Card {
	return lo.Filter(cards, func(c Card, _ int) bool {
		return c.RowNumber == row
	})
}

// RowLength is the number of cards in the given row.
func RowLength(cards []Card, row int) int {
	return lo.CountBy(cards, func(c Card) bool {
		return c.RowNumber == row
	})
}

// RowMax is the highest card number in the row, 0 for an empty row.
func RowMax(cards []Card, row int) int {
	return maxOrZero(cardNumbers(CardsInRow(cards, row)))
}

// RowMaxima returns RowMax for rows 1 through NumRows; index i holds row i+1.
func RowMaxima(cards []Card) [NumRows]int {
	var maxima [NumRows]int
	for i := range maxima {
		maxima[i] = RowMax(cards, i+1)
	}
	return maxima
}

// Hand returns the AI's playable cards sorted by ascending card number.
func Hand(cards []Card) []Card {
	hand := lo.Filter(cards, func(c Card, _ int) bool {
		return c.Playable()
	})
	slices.SortStableFunc(hand, func(a, b Card) int {
		return cmp.Compare(a.CardNumber, b.CardNumber)
	})
	return hand
}

// HandMax is the AI's highest playable card number, 0 if it has none.
func HandMax(cards []Card) int {
	return maxOrZero(cardNumbers(Hand(cards)))
}

// HandMin is the AI's lowest playable card number, 0 if it has none.
func HandMin(cards []Card) int {
	return minOrZero(cardNumbers(Hand(cards)))
}
