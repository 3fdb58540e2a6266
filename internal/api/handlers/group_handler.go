package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/domain/group"
	"github.com/linskybing/forms-go/pkg/response"
)

type GroupHandler struct {
	service *application.GroupService
}

func NewGroupHandler(service *application.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var input group.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, nil)
		return
	}
	g, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GroupHandler) RenameGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input group.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, nil)
		return
	}
	g, err := h.service.Rename(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGroup keeps the group's forms; they become ungrouped.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Group deleted"})
}
