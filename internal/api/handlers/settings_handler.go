package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/pkg/response"
)

type SettingsHandler struct {
	service *application.SettingsService
}

func NewSettingsHandler(service *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings godoc
// @Summary Plugin settings
// @Tags settings
// @Produce json
// @Success 200 {object} config.Settings
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	st, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateSettings godoc
// @Summary Change plugin settings
// @Description Only the sent keys change. Values may be strings, numbers or booleans.
// @Tags settings
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Settings keyed by name"
// @Success 200 {object} config.Settings
// @Failure 400 {object} response.ErrorResponse "Unknown key or invalid value"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			values[k] = ""
			continue
		}
		values[k] = fmt.Sprint(v)
	}
	st, err := h.service.Update(c.Request.Context(), values)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
