package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the minimal contract I need to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	probe Pinger
}

func NewHealthHandler(probe Pinger) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports unavailable when the configured pagination defaults are unusable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.probe.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
