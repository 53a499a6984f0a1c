package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/domino14/bullheads/ai/bot"
	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/game"
	"github.com/domino14/bullheads/metrics"
)

const transportHTTP = "http"

// ErrorResponse is returned for any request that is not answered with a
// game state.
type ErrorResponse struct {
	Detail string           `json:"detail"`
	Fields []api.FieldError `json:"fields,omitempty"`
}

type Handlers struct {
	metrics *metrics.Metrics
}

func NewHandlers(m *metrics.Metrics) *Handlers {
	return &Handlers{metrics: m}
}

// HealthCheck always answers 200 while the process is up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ComputeMove reads a full game state, makes the AI's move and answers
// with the updated state. Bodies that cannot be decoded, are missing fields
// or hold bad values all get a 422.
func (h *Handlers) ComputeMove(c *gin.Context) {
	started := time.Now()
	logger := loggerFrom(c)

	var req api.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		field := api.FieldError{Field: "body", Rule: "json"}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field = api.FieldError{Field: typeErr.Field, Rule: "type"}
		}
		logger.Info().Err(err).Msg("could-not-decode-state")
		h.metrics.ObserveRequest(transportHTTP, "invalid", started)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Detail: err.Error(),
			Fields: []api.FieldError{field},
		})
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		logger.Info().Interface("fields", fields).Msg("invalid-state")
		h.metrics.ObserveRequest(transportHTTP, "invalid", started)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Detail: "invalid game state",
			Fields: fields,
		})
		return
	}

	state := req.GameState()
	out, m := bot.ComputeMove(state)

	logger.Info().
		Uint64("fingerprint", game.Fingerprint(state.Cards)).
		Str("move", m.ShortDescription()).
		Int("round", out.Round).
		Int("ai-score", out.AIScore).
		Msg("move-computed")
	h.metrics.ObserveMove(m)
	h.metrics.ObserveRequest(transportHTTP, "ok", started)

	c.JSON(http.StatusOK, out)
}
