package move

import (
	"fmt"
	"strings"
)

// MoveType is the kind of move the AI made.
type MoveType uint8

const (
	// MoveTypeExtend puts a card on the end of a row.
	MoveTypeExtend MoveType = iota
	// MoveTypeSacrifice takes a whole row and restarts it with a card.
	MoveTypeSacrifice
	// MoveTypePass leaves the state as it was.
	MoveTypePass
)

// Move is a single AI move. The strategy fills in the action, row and card;
// the collected cards and penalty are filled in when the move is applied.
type Move struct {
	action MoveType
	row    int
	// card is the card number placed, 0 if nothing is placed.
	card int

	collected []int
	penalty   int
}

// NewExtendMove places card at the end of row.
func NewExtendMove(row, card int) *Move {
	return &Move{action: MoveTypeExtend, row: row, card: card}
}

// NewSacrificeMove takes row and restarts it with card. card may be 0 if
// the AI has nothing left to play.
func NewSacrificeMove(row, card int) *Move {
	return &Move{action: MoveTypeSacrifice, row: row, card: card}
}

// NewPassMove is a move that changes nothing. row is the row the AI was
// aiming at, kept for logging.
func NewPassMove(row int) *Move {
	return &Move{action: MoveTypePass, row: row}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Row() int {
	return m.row
}

func (m *Move) Card() int {
	return m.card
}

// Collected returns the card numbers that went to the AI's bull-head stack.
func (m *Move) Collected() []int {
	return m.collected
}

// Penalty is the number of bull heads the AI took with this move.
func (m *Move) Penalty() int {
	return m.penalty
}

// SetCollected records the outcome of resolving the move.
func (m *Move) SetCollected(cards []int, penalty int) {
	m.collected = cards
	m.penalty = penalty
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypeExtend:
		return "Extend"
	case MoveTypeSacrifice:
		return "Sacrifice"
	case MoveTypePass:
		return "Pass"
	}
	return "Unhandled"
}

// ShortDescription is a compact, human readable form of the move.
func (m *Move) ShortDescription() string {
	var sb strings.Builder
	switch m.action {
	case MoveTypeExtend:
		fmt.Fprintf(&sb, "%d -> row %d", m.card, m.row)
	case MoveTypeSacrifice:
		if m.card == 0 {
			fmt.Fprintf(&sb, "take row %d", m.row)
		} else {
			fmt.Fprintf(&sb, "take row %d, %d -> row %d", m.row, m.card, m.row)
		}
	case MoveTypePass:
		return "(Pass)"
	default:
		return "UNHANDLED"
	}
	if len(m.collected) > 0 {
		fmt.Fprintf(&sb, " (collected %v, %d bulls)", m.collected, m.penalty)
	}
	return sb.String()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p action: %v row: %d card: %d collected: %v penalty: %d>",
		m, m.MoveTypeString(), m.row, m.card, m.collected, m.penalty)
}
