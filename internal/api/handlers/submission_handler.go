package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/pkg/response"
	"github.com/linskybing/forms-go/pkg/utils"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type SubmissionHandler struct {
	service *application.SubmissionService
	exports *application.ExportService
}

func NewSubmissionHandler(service *application.SubmissionService, exports *application.ExportService) *SubmissionHandler {
	return &SubmissionHandler{service: service, exports: exports}
}

// ExportSubmissionsInput selects submissions to download at once.
type ExportSubmissionsInput struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Format string `json:"format" binding:"omitempty,oneof=csv xlsx"`
}

func pageParams(c *gin.Context) (int, int) {
	limit := utils.QueryInt(c, "limit", defaultPageSize)
	if limit == 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	return limit, utils.QueryInt(c, "offset", 0)
}

// ListSubmissions godoc
// @Summary List the submissions of a form, newest first
// @Tags submissions
// @Produce json
// @Param id path int true "Form ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} response.PageResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	formID, ok := parseID(c)
	if !ok {
		return
	}
	limit, offset := pageParams(c)
	items, total, err := h.service.ListByForm(c.Request.Context(), formID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PageResponse{Items: items, Total: total, Limit: limit, Offset: offset})
}

// RecentSubmissions feeds the dashboard widget.
func (h *SubmissionHandler) RecentSubmissions(c *gin.Context) {
	limit := utils.QueryInt(c, "limit", 5)
	if limit == 0 || limit > maxPageSize {
		limit = 5
	}
	items, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CreateSubmission godoc
// @Summary Enter a submission from the control panel
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body submission.SaveSubmissionDTO true "Field values keyed by handle"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	formID, ok := parseID(c)
	if !ok {
		return
	}
	var input submission.SaveSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, nil)
		return
	}
	var author *uint
	if uid, err := utils.GetUserIDFromContext(c); err == nil {
		author = &uid
	}
	sub, err := h.service.Create(c.Request.Context(), formID, input, author)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input submission.SaveSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, nil)
		return
	}
	sub, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Submission deleted"})
}

// ExportSubmissions godoc
// @Summary Download selected submissions of a form
// @Tags submissions
// @Accept json
// @Produce octet-stream
// @Param id path int true "Form ID"
// @Param input body ExportSubmissionsInput true "Submission IDs"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/submissions/export [post]
func (h *SubmissionHandler) ExportSubmissions(c *gin.Context) {
	formID, ok := parseID(c)
	if !ok {
		return
	}
	var input ExportSubmissionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, map[string]string{"IDs": "ids"})
		return
	}
	res, err := h.exports.ExportSubmissions(c.Request.Context(), formID, input.IDs, input.Format)
	if err != nil {
		respondError(c, err)
		return
	}
	defer h.exports.Discard(res)
	c.FileAttachment(res.Path, downloadName(res.Export))
}
