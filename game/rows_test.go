package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestRowMaxEmptyRowIsZero(t *testing.T) {
	is := is.New(t)
	cards := []Card{
		{CardNumber: 12, RowNumber: 1},
		{CardNumber: 40, RowNumber: 1},
		{CardNumber: 8, RowNumber: 3},
	}
	is.Equal(RowMax(cards, 1), 40)
	is.Equal(RowMax(cards, 2), 0)
	is.Equal(RowMaxima(cards), [NumRows]int{40, 0, 8, 0})
	is.Equal(RowMaxima(nil), [NumRows]int{0, 0, 0, 0})
}

func TestHand(t *testing.T) {
	is := is.New(t)
	cards := []Card{
		{CardNumber: 47},
		{CardNumber: 5},
		{CardNumber: 90, RowNumber: 2},
		{CardNumber: 2, IsInBullHeadStack: true},
		{CardNumber: 23},
	}
	hand := Hand(cards)
	is.Equal(len(hand), 3)
	is.Equal(hand[0].CardNumber, 5)
	is.Equal(hand[1].CardNumber, 23)
	is.Equal(hand[2].CardNumber, 47)
	is.Equal(HandMax(cards), 47)
	is.Equal(HandMin(cards), 5)
	// Hand must not reorder the caller's slice.
	is.Equal(cards[0].CardNumber, 47)
}

func TestHandEmptyIsZero(t *testing.T) {
	is := is.New(t)
	cards := []Card{
		{CardNumber: 90, RowNumber: 2},
		{CardNumber: 2, IsInBullHeadStack: true},
	}
	is.Equal(len(Hand(cards)), 0)
	is.Equal(HandMax(cards), 0)
	is.Equal(HandMin(cards), 0)
}

func TestRowLength(t *testing.T) {
	is := is.New(t)
	cards := []Card{
		{CardNumber: 1, RowNumber: 4},
		{CardNumber: 2, RowNumber: 4},
		{CardNumber: 3, RowNumber: 1},
	}
	is.Equal(RowLength(cards, 4), 2)
	is.Equal(RowLength(cards, 1), 1)
	is.Equal(RowLength(cards, 2), 0)
}

func TestCardString(t *testing.T) {
	is := is.New(t)
	is.Equal(Card{CardNumber: 7}.String(), "7(hand)")
	is.Equal(Card{CardNumber: 64, RowNumber: 3}.String(), "64(r3)")
	is.Equal(Card{CardNumber: 55, IsInBullHeadStack: true}.String(), "55(stack)")
}
