package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/antispam"
	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/pkg/response"
)

const maxSubmitMemory = 8 << 20

// PublicForm is what a visitor needs to render a form.
type PublicForm struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Handle           string            `json:"handle"`
	SubmitButton     string            `json:"submit_button"`
	DisplayTabTitles bool              `json:"display_tab_titles"`
	Fields           []field.Field     `json:"fields"`
	Hidden           map[string]string `json:"hidden"`
	RecaptchaSiteKey string            `json:"recaptcha_site_key,omitempty"`
}

type PublicHandler struct {
	forms       *application.FormService
	submissions *application.SubmissionService
	settings    *application.SettingsService
	checker     *antispam.Checker
}

func NewPublicHandler(forms *application.FormService, submissions *application.SubmissionService, settings *application.SettingsService, checker *antispam.Checker) *PublicHandler {
	return &PublicHandler{
		forms:       forms,
		submissions: submissions,
		settings:    settings,
		checker:     checker,
	}
}

// RenderForm godoc
// @Summary Form definition with the anti-spam fields to embed
// @Tags public
// @Produce json
// @Param handle path string true "Form handle"
// @Success 200 {object} PublicForm
// @Failure 404 {object} response.ErrorResponse
// @Router /public/forms/{handle} [get]
func (h *PublicHandler) RenderForm(c *gin.Context) {
	ctx := c.Request.Context()
	f, err := h.forms.GetByHandle(ctx, c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	hidden, err := h.checker.Render(ctx, antispam.Request{
		SessionID:  middleware.SessionID(c),
		FormHandle: f.Handle,
		Host:       c.Request.Host,
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	st, err := h.settings.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	out := PublicForm{
		ID:               f.ID,
		Name:             f.Name,
		Handle:           f.Handle,
		SubmitButton:     f.SubmitButton,
		DisplayTabTitles: f.DisplayTabTitles,
		Fields:           f.Fields,
		Hidden:           hidden,
	}
	if st.GoogleRecaptchaEnabled {
		out.RecaptchaSiteKey = st.GoogleRecaptchaSiteKey
	}
	c.JSON(http.StatusOK, out)
}

// Submit godoc
// @Summary Submit a form
// @Description Accepts JSON or form encoded values keyed by field handle, plus the
// @Description hidden anti-spam fields. A submit judged as spam gets success=false
// @Description without any reason.
// @Tags public
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param handle path string true "Form handle"
// @Success 200 {object} application.SubmitResult
// @Failure 400 {object} application.SubmitResult "Field errors"
// @Failure 404 {object} response.ErrorResponse
// @Router /public/forms/{handle}/submit [post]
func (h *PublicHandler) Submit(c *gin.Context) {
	values, err := postedValues(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	res, err := h.submissions.Submit(c.Request.Context(), c.Param("handle"), application.SubmitInput{
		SessionID: middleware.SessionID(c),
		Host:      c.Request.Host,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
		Referrer:  c.Request.Referer(),
		Values:    values,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if len(res.Errors) > 0 {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// postedValues reads a JSON object or form values. Repeated form keys,
// and keys ending in [], become lists.
func postedValues(c *gin.Context) (map[string]any, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		values := map[string]any{}
		if err := c.ShouldBindJSON(&values); err != nil {
			return nil, err
		}
		return values, nil
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.Request.ParseMultipartForm(maxSubmitMemory); err != nil {
			return nil, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	values := make(map[string]any, len(c.Request.PostForm))
	for key, vs := range c.Request.PostForm {
		name := strings.TrimSuffix(key, "[]")
		if len(vs) == 1 && name == key {
			values[name] = vs[0]
			continue
		}
		list := make([]any, 0, len(vs))
		for _, v := range vs {
			list = append(list, v)
		}
		values[name] = list
	}
	return values, nil
}
