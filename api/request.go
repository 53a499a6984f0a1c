// Package api holds the types exchanged with clients over HTTP and NATS.
package api

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/domino14/bullheads/game"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// CardRequest is a card as it arrives over the wire. Every field is a
// pointer so a missing field can be told apart from a zero value.
type CardRequest struct {
	CardNumber        *int  `json:"cardNumber" validate:"required,gt=0"`
	IsFlipped         *bool `json:"isFlipped" validate:"required"`
	IsSelect          *bool `json:"isSelect" validate:"required"`
	RowNumber         *int  `json:"rowNumber" validate:"required,gte=0,lte=4"`
	ColNumber         *int  `json:"colNumber" validate:"required"`
	IsInBullHeadStack *bool `json:"isInBullHeadStack" validate:"required"`
	IsInDrawPile      *bool `json:"isInDrawPile" validate:"required"`
}

// StateRequest is the body of a move request. All fields are required.
// Round is deliberately not range checked: unknown rounds are scored in
// the round 3 bucket.
type StateRequest struct {
	HasStarted  *bool `json:"hasStarted" validate:"required"`
	PlayerTurn  *bool `json:"playerTurn" validate:"required"`
	HasEnded    *bool `json:"hasEnded" validate:"required"`
	PlayerScore *int  `json:"playerScore" validate:"required"`
	AIScore     *int  `json:"aiScore" validate:"required"`
	PlayerWon   *bool `json:"playerWon" validate:"required"`
	AIWon       *bool `json:"aiWon" validate:"required"`
	AIAlgo      *int  `json:"aiAlgo" validate:"required"`

	Cards []CardRequest `json:"cards" validate:"required,dive"`

	R1Over *bool `json:"r1Over" validate:"required"`
	R2Over *bool `json:"r2Over" validate:"required"`
	R3Over *bool `json:"r3Over" validate:"required"`

	R1PlayerWon *bool `json:"r1playerWon" validate:"required"`
	R2PlayerWon *bool `json:"r2playerWon" validate:"required"`
	R3PlayerWon *bool `json:"r3playerWon" validate:"required"`

	R1PlayerScore *int `json:"r1playerScore" validate:"required"`
	R2PlayerScore *int `json:"r2playerScore" validate:"required"`
	R3PlayerScore *int `json:"r3playerScore" validate:"required"`

	R1AIScore *int `json:"r1aiScore" validate:"required"`
	R2AIScore *int `json:"r2aiScore" validate:"required"`
	R3AIScore *int `json:"r3aiScore" validate:"required"`

	Round *int `json:"round" validate:"required"`
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate checks the request and returns one FieldError per bad field.
func (r *StateRequest) Validate() []FieldError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: err.Error()}}
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		// Drop the leading struct name from the namespace.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		out[i] = FieldError{Field: field, Rule: fe.Tag()}
	}
	return out
}

// InvalidStateError is returned by ParseState for a request that decoded
// but failed validation.
type InvalidStateError struct {
	Fields []FieldError
}

func (e *InvalidStateError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " (" + f.Rule + ")"
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// ParseState decodes a JSON move request and validates it. Every transport
// that does not bind through gin goes through here.
func ParseState(data []byte) (game.GameState, error) {
	var req StateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return game.GameState{}, fmt.Errorf("decoding state: %w", err)
	}
	if fields := req.Validate(); len(fields) > 0 {
		return game.GameState{}, &InvalidStateError{Fields: fields}
	}
	return req.GameState(), nil
}

// GameState converts a validated request to the domain state.
func (r *StateRequest) GameState() game.GameState {
	cards := make([]game.Card, len(r.Cards))
	for i, c := range r.Cards {
		cards[i] = game.Card{
			CardNumber:        *c.CardNumber,
			IsFlipped:         *c.IsFlipped,
			IsSelect:          *c.IsSelect,
			RowNumber:         *c.RowNumber,
			ColNumber:         *c.ColNumber,
			IsInBullHeadStack: *c.IsInBullHeadStack,
			IsInDrawPile:      *c.IsInDrawPile,
		}
	}
	return game.GameState{
		Scoreboard: game.Scoreboard{
			HasStarted:    *r.HasStarted,
			PlayerTurn:    *r.PlayerTurn,
			HasEnded:      *r.HasEnded,
			PlayerScore:   *r.PlayerScore,
			AIScore:       *r.AIScore,
			PlayerWon:     *r.PlayerWon,
			AIWon:         *r.AIWon,
			AIAlgo:        *r.AIAlgo,
			R1Over:        *r.R1Over,
			R2Over:        *r.R2Over,
			R3Over:        *r.R3Over,
			R1PlayerWon:   *r.R1PlayerWon,
			R2PlayerWon:   *r.R2PlayerWon,
			R3PlayerWon:   *r.R3PlayerWon,
			R1PlayerScore: *r.R1PlayerScore,
			R2PlayerScore: *r.R2PlayerScore,
			R3PlayerScore: *r.R3PlayerScore,
			R1AIScore:     *r.R1AIScore,
			R2AIScore:     *r.R2AIScore,
			R3AIScore:     *r.R3AIScore,
			Round:         *r.Round,
		},
		Cards: cards,
	}
}

// BotResponse is the reply to a move request sent over NATS.
type BotResponse struct {
	State *game.GameState `json:"state,omitempty"`
	Move  string          `json:"move,omitempty"`
	Error string          `json:"error,omitempty"`
}

// LambdaEvent is the payload of a move request made through Lambda. State
// is kept raw so it can be checked with ParseState. If ReplyChannel is set
// the response is also published there.
type LambdaEvent struct {
	GameID       string          `json:"gameID"`
	State        json.RawMessage `json:"state"`
	ReplyChannel string          `json:"replyChannel,omitempty"`
}
