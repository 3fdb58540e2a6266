package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/pkg/response"
	"github.com/linskybing/forms-go/pkg/utils"
)

var formLabels = map[string]string{
	"Name":        "name",
	"Handle":      "handle",
	"AfterSubmit": "after submit",
	"RedirectURL": "redirect URL",
	"Type":        "field type",
}

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// ListForms godoc
// @Summary List forms
// @Tags forms
// @Produce json
// @Param group_id query int false "Only forms of this group"
// @Success 200 {array} form.Form
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	var (
		forms []form.Form
		err   error
	)
	if groupID, perr := utils.ParseQueryUintParam(c, "group_id"); perr == nil {
		forms, err = h.service.ListByGroup(c.Request.Context(), groupID)
	} else if perr == utils.ErrEmptyParameter {
		forms, err = h.service.List(c.Request.Context())
	} else {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group_id"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form with its fields
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param input body form.CreateFormDTO true "Form"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Handle taken"
// @Security BearerAuth
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, formLabels)
		return
	}
	f, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateForm godoc
// @Summary Update a form
// @Description Omitted properties keep their value. Fields are replaced only when sent.
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateFormDTO true "Changes"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, formLabels)
		return
	}
	f, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// ReplaceFields swaps the field layout of a form.
func (h *FormHandler) ReplaceFields(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var inputs []field.FieldInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		bindError(c, err, formLabels)
		return
	}
	f, err := h.service.ReplaceFields(c.Request.Context(), id, inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteForm godoc
// @Summary Delete a form with its submissions and exports
// @Tags forms
// @Param id path int true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}
