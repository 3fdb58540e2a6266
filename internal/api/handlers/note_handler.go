package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/pkg/response"
	"github.com/linskybing/forms-go/pkg/utils"
)

type NoteHandler struct {
	service *application.NoteService
}

func NewNoteHandler(service *application.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	notes, err := h.service.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) AddNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input submission.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, nil)
		return
	}
	var author *uint
	if uid, err := utils.GetUserIDFromContext(c); err == nil {
		author = &uid
	}
	n, err := h.service.Add(c.Request.Context(), id, input, author)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Note deleted"})
}
