package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appjob "github.com/linskybing/forms-go/internal/application/job"
	"github.com/linskybing/forms-go/pkg/response"
)

// JobHandler handles job-related HTTP endpoints.
type JobHandler struct {
	svc *appjob.Service
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc *appjob.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// GetJob returns a single job by ID.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.svc.GetJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Code: 0, Message: "success", Data: job})
}

// RetryJob queues a failed job again.
func (h *JobHandler) RetryJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.svc.RetryJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Code: 0, Message: "restarted", Data: job})
}
