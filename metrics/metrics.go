// Package metrics holds the Prometheus instruments shared by the HTTP and
// NATS transports.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/domino14/bullheads/move"
)

const namespace = "bullheads"

// Metrics counts requests and the moves the AI makes. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// RequestsTotal counts move requests by transport and status.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration measures request handling time by transport.
	RequestDuration *prometheus.HistogramVec
	// MovesTotal counts AI moves by action (Extend, Sacrifice, Pass).
	MovesTotal *prometheus.CounterVec
	// BullHeadsCollected counts bull heads charged to the AI.
	BullHeadsCollected prometheus.Counter
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Move requests by transport and status.",
		}, []string{"transport", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a move request.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"transport"}),
		MovesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "AI moves by action.",
		}, []string{"action"}),
		BullHeadsCollected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bull_heads_collected_total",
			Help:      "Bull heads the AI has taken.",
		}),
	}
}

// ObserveRequest records a finished request.
func (m *Metrics) ObserveRequest(transport, status string, started time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(transport, status).Inc()
	m.RequestDuration.WithLabelValues(transport).Observe(time.Since(started).Seconds())
}

// ObserveMove records a move the AI made.
func (m *Metrics) ObserveMove(mv *move.Move) {
	if m == nil || mv == nil {
		return
	}
	m.MovesTotal.WithLabelValues(mv.MoveTypeString()).Inc()
	m.BullHeadsCollected.Add(float64(mv.Penalty()))
}
