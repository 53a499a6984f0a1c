package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/domino14/bullheads/metrics"
)

// NewRouter builds the HTTP API:
//
//	POST /        compute the AI's move for the posted game state
//	GET  /health  liveness
//	GET  /metrics Prometheus metrics from gatherer
func NewRouter(origins []string, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(), CORS(origins))

	h := NewHandlers(m)
	router.POST("/", h.ComputeMove)
	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return router
}
