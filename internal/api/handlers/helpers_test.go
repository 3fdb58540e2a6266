package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/api/handlers"
	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/api/routes"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/config"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/repository/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "handler-test-secret"
	config.Issuer = "forms-test"
	config.SessionCookie = "forms_session"
	middleware.Init()
}

type env struct {
	router *gin.Engine
	svc    *application.Services
	files  *export.FileStore

	form       *mock.MockFormRepo
	submission *mock.MockSubmissionRepo
	export     *mock.MockExportRepo
	job        *mock.MockJobRepo
	setting    *mock.MockSettingRepo
	user       *mock.MockUserRepo
}

// setupRouter wires the real routes and services over mocked repositories.
// Settings lookups return the given overrides.
func setupRouter(t *testing.T, overrides map[string]string) *env {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	e := &env{
		form:       mock.NewMockFormRepo(ctrl),
		submission: mock.NewMockSubmissionRepo(ctrl),
		export:     mock.NewMockExportRepo(ctrl),
		job:        mock.NewMockJobRepo(ctrl),
		setting:    mock.NewMockSettingRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
		files:      export.NewFileStore(filepath.Join(t.TempDir(), "exports")),
	}
	e.setting.EXPECT().All(gomock.Any()).DoAndReturn(func(context.Context) (map[string]string, error) {
		out := make(map[string]string, len(overrides))
		for k, v := range overrides {
			out[k] = v
		}
		return out, nil
	}).AnyTimes()

	repos := &repository.Repos{
		Form:       e.form,
		Group:      mock.NewMockGroupRepo(ctrl),
		Submission: e.submission,
		Note:       mock.NewMockNoteRepo(ctrl),
		Export:     e.export,
		Job:        e.job,
		Setting:    e.setting,
		User:       e.user,
	}
	e.svc = application.New(repos, application.Deps{
		Settings: config.DefaultSettings(),
		Files:    e.files,
	})
	e.router = gin.New()
	routes.RegisterRoutes(e.router, handlers.New(e.svc))
	return e
}

func token(t *testing.T, admin bool) string {
	tok, err := middleware.GenerateToken(1, "editor", admin, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *env) do(t *testing.T, method, path, tok string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func contactForm() *form.Form {
	return &form.Form{
		ID:                7,
		Name:              "Contact",
		Handle:            "contact",
		TitleFormat:       "{name}",
		SubmissionEnabled: true,
		AfterSubmit:       form.AfterSubmitMessage,
		Fields: []field.Field{
			{ID: 1, FormID: 7, Handle: "name", Name: "Name", Type: field.TypePlainText, Required: true},
			{ID: 2, FormID: 7, Handle: "color", Name: "Color", Type: field.TypeDropdown,
				Settings: datatypes.NewJSONType(field.Settings{Options: []field.Option{{Label: "Red", Value: "red"}}}),
			},
		},
	}
}
