package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/metrics"
)

// Handler serves the health and metrics endpoints.
type Handler struct {
	metrics *metrics.Metrics
}

func NewHandler(m *metrics.Metrics) *Handler {
	return &Handler{metrics: m}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "alive"}))
}

// ReadinessCheck reports ready unconditionally: all state is in
// process memory, there are no external resources to wait for.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ready"}))
}

func (h *Handler) MetricsHandler(c *gin.Context) {
	h.metrics.Handler()(c)
}
