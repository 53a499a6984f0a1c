package game

import "slices"

// Scoreboard holds every field of the game state other than the cards.
// The AI only ever touches AIScore and the per-round AI buckets; the rest
// passes through.
type Scoreboard struct {
	HasStarted  bool `json:"hasStarted" yaml:"hasStarted"`
	PlayerTurn  bool `json:"playerTurn" yaml:"playerTurn"`
	HasEnded    bool `json:"hasEnded" yaml:"hasEnded"`
	PlayerScore int  `json:"playerScore" yaml:"playerScore"`
	AIScore     int  `json:"aiScore" yaml:"aiScore"`
	PlayerWon   bool `json:"playerWon" yaml:"playerWon"`
	AIWon       bool `json:"aiWon" yaml:"aiWon"`
	// AIAlgo selects the strategy. Only one exists, so it is accepted and
	// otherwise ignored.
	AIAlgo int `json:"aiAlgo" yaml:"aiAlgo"`

	R1Over bool `json:"r1Over" yaml:"r1Over"`
	R2Over bool `json:"r2Over" yaml:"r2Over"`
	R3Over bool `json:"r3Over" yaml:"r3Over"`

	R1PlayerWon bool `json:"r1playerWon" yaml:"r1playerWon"`
	R2PlayerWon bool `json:"r2playerWon" yaml:"r2playerWon"`
	R3PlayerWon bool `json:"r3playerWon" yaml:"r3playerWon"`

	R1PlayerScore int `json:"r1playerScore" yaml:"r1playerScore"`
	R2PlayerScore int `json:"r2playerScore" yaml:"r2playerScore"`
	R3PlayerScore int `json:"r3playerScore" yaml:"r3playerScore"`

	R1AIScore int `json:"r1aiScore" yaml:"r1aiScore"`
	R2AIScore int `json:"r2aiScore" yaml:"r2aiScore"`
	R3AIScore int `json:"r3aiScore" yaml:"r3aiScore"`

	Round int `json:"round" yaml:"round"`
}

// GameState is the full snapshot exchanged with the client on every
// request. The scoreboard fields are flattened next to the card list.
type GameState struct {
	Scoreboard `yaml:",inline"`
	Cards      []Card `json:"cards" yaml:"cards"`
}

// Snapshot splits the state into a working copy of its cards and its
// scoreboard. Changes to the returned cards do not affect s.
func (s GameState) Snapshot() ([]Card, Scoreboard) {
	return slices.Clone(s.Cards), s.Scoreboard
}

// Assemble builds the outgoing state from a scoreboard and card list.
func Assemble(sb Scoreboard, cards []Card) GameState {
	return GameState{Scoreboard: sb, Cards: cards}
}
