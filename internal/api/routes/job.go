package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/api/handlers"
)

// JobRoutes registers job endpoints
func JobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/retry", h.RetryJob)
	}
}
