package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/forms-go/internal/application"
	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/pkg/response"
	"github.com/linskybing/forms-go/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
)

var statusPollInterval = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

var exportLabels = map[string]string{
	"FormID": "form",
	"Name":   "name",
	"Format": "format",
}

type ExportHandler struct {
	service *application.ExportService
}

func NewExportHandler(service *application.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// downloadName is the attachment name of an export file.
func downloadName(exp *exportdomain.Export) string {
	name := strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(exp.Name), "-"), "-.")
	if name == "" {
		name = "export"
	}
	return name + "." + exp.Extension()
}

// ListExports godoc
// @Summary List exports
// @Tags exports
// @Produce json
// @Param form_id query int false "Only exports of this form"
// @Success 200 {array} export.Export
// @Security BearerAuth
// @Router /exports [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	var formID *uint
	if id, err := utils.ParseQueryUintParam(c, "form_id"); err == nil {
		formID = &id
	} else if err != utils.ErrEmptyParameter {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid form_id"})
		return
	}
	exports, err := h.service.List(c.Request.Context(), formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exports)
}

func (h *ExportHandler) GetExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	exp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// ExportStatus godoc
// @Summary Progress of an export and its latest job
// @Tags exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} application.ExportStatus
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /exports/{id}/status [get]
func (h *ExportHandler) ExportStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.service.Status(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// SaveExport godoc
// @Summary Create an export
// @Description With start_right_away the file is written and served in the response
// @Description and nothing is stored. Otherwise the export is stored and queued.
// @Tags exports
// @Accept json
// @Produce json
// @Param input body export.SaveExportDTO true "Export"
// @Success 201 {object} application.SaveResult
// @Success 200 {file} file "Export run right away"
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /exports [post]
func (h *ExportHandler) SaveExport(c *gin.Context) {
	var input exportdomain.SaveExportDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, exportLabels)
		return
	}
	res, err := h.service.Save(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Temporary {
		defer h.service.Discard(res)
		c.FileAttachment(res.Path, downloadName(res.Export))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// RestartExport godoc
// @Summary Recount an export and queue it again
// @Tags exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} application.SaveResult
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse "No submissions"
// @Security BearerAuth
// @Router /exports/{id}/restart [post]
func (h *ExportHandler) RestartExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.service.Restart(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ExportHandler) DeleteExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Export deleted"})
}

// DownloadExport godoc
// @Summary Download the file of a finished export
// @Tags exports
// @Produce octet-stream
// @Param id path int true "Export ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse "File missing"
// @Failure 409 {object} response.ErrorResponse "Not finished"
// @Security BearerAuth
// @Router /exports/{id}/download [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, name, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, name)
}

// CountSubmissions godoc
// @Summary Count the submissions matching export criteria
// @Tags exports
// @Accept json
// @Produce json
// @Param input body export.CountDTO true "Form and criteria"
// @Success 200 {object} export.CountResult
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /exports/count [post]
func (h *ExportHandler) CountSubmissions(c *gin.Context) {
	var input exportdomain.CountDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, exportLabels)
		return
	}
	n, err := h.service.TotalByCriteria(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exportdomain.CountResult{Total: n})
}

// StreamStatus pushes the export status over WebSocket until the export
// finishes, its job fails or the client goes away.
func (h *ExportHandler) StreamStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := c.Request.Context()
	ticker := time.NewTicker(statusPollInterval)
	defer ticker.Stop()

	var last []byte
	for {
		st, err := h.service.Status(ctx, id)
		if err != nil {
			msg, _ := json.Marshal(response.ErrorResponse{Error: err.Error()})
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.TextMessage, msg)
			return
		}
		payload, _ := json.Marshal(st)
		if string(payload) != string(last) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
			last = payload
		}
		if st.Export.Finished || (st.Job != nil && st.Job.Status == job.JobStatusFailed) {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.C:
		}
	}
}
