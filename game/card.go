package game

import "fmt"

const (
	// NumRows is the number of shared rows on the table.
	NumRows = 4
	// HandRow is the row number of a card that is not on the table.
	HandRow = 0
	// MaxRowLength is the number of cards at which a row overflows and
	// must be collected.
	MaxRowLength = 6
)

// Card is a single card as the client sends it. IsFlipped, IsSelect,
// ColNumber and IsInDrawPile are UI state and pass through untouched.
type Card struct {
	CardNumber        int  `json:"cardNumber" yaml:"cardNumber"`
	IsFlipped         bool `json:"isFlipped" yaml:"isFlipped"`
	IsSelect          bool `json:"isSelect" yaml:"isSelect"`
	RowNumber         int  `json:"rowNumber" yaml:"rowNumber"`
	ColNumber         int  `json:"colNumber" yaml:"colNumber"`
	IsInBullHeadStack bool `json:"isInBullHeadStack" yaml:"isInBullHeadStack"`
	IsInDrawPile      bool `json:"isInDrawPile" yaml:"isInDrawPile"`
}

// Playable returns true if the card is in the AI's hand: not on a row and
// not collected.
func (c Card) Playable() bool {
	return c.RowNumber == HandRow && !c.IsInBullHeadStack
}

// BullHeads is the penalty weight of this card.
func (c Card) BullHeads() int {
	return BullHeads(c.CardNumber)
}

func (c Card) String() string {
	switch {
	case c.IsInBullHeadStack:
		return fmt.Sprintf("%d(stack)", c.CardNumber)
	case c.RowNumber == HandRow:
		return fmt.Sprintf("%d(hand)", c.CardNumber)
	default:
		return fmt.Sprintf("%d(r%d)", c.CardNumber, c.RowNumber)
	}
}
