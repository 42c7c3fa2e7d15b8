package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/service"
)

// Register mounts all public routes on the given engine.
// The pagination service doubles as the readiness probe.
func Register(r *gin.Engine, svc service.PaginationService) {
	h := NewHealthHandler(svc)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPaginationHandler(svc).Register(api)
	}
}
