package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	jobsvc "github.com/linskybing/forms-go/internal/application/job"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/pkg/response"
	"github.com/linskybing/forms-go/pkg/utils"
	"gorm.io/gorm"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case application.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrNoSubmissions),
		errors.Is(err, export.ErrNoColumns):
		return http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, application.ErrExportFileMissing):
		return http.StatusNotFound
	case errors.Is(err, application.ErrHandleTaken),
		errors.Is(err, application.ErrExportNotFinished),
		errors.Is(err, jobsvc.ErrJobNotRetryable):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.JSON(status, response.ErrorResponse{Error: msg})
}

func bindError(c *gin.Context, err error, labels map[string]string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: utils.ValidationMessage(err, labels)})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
