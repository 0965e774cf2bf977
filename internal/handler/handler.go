package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/twinkal0201/cardio-70-AI/internal/service/prediction"
)

// Pinger is anything with a cheap connectivity check, typically the
// database handle.
type Pinger interface {
	Ping() error
}

// Handler serves the operational endpoints: liveness, readiness, metrics.
type Handler struct {
	predictionSvc *prediction.Service
	db            Pinger
}

func NewHandler(predictionSvc *prediction.Service, db Pinger) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		db:            db,
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"status": "healthy",
		},
	})
}

// ReadinessCheck verifies the model service and, when configured, the
// database are reachable.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	checks := gin.H{"model_service": "ok"}
	ready := true

	if err := h.predictionSvc.Ready(c.Request.Context()); err != nil {
		checks["model_service"] = err.Error()
		ready = false
	}
	if h.db != nil {
		checks["database"] = "ok"
		if err := h.db.Ping(); err != nil {
			checks["database"] = err.Error()
			ready = false
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status": "success",
		"data":   checks,
	})
}

// MetricsHandler exposes the prometheus registry.
func MetricsHandler(reg prometheus.Gatherer) gin.HandlerFunc {
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
