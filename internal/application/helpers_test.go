package application

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/repository/mock"
	"gorm.io/datatypes"
)

type repoMocks struct {
	form       *mock.MockFormRepo
	group      *mock.MockGroupRepo
	submission *mock.MockSubmissionRepo
	note       *mock.MockNoteRepo
	export     *mock.MockExportRepo
	job        *mock.MockJobRepo
	setting    *mock.MockSettingRepo
	user       *mock.MockUserRepo
}

func setupRepos(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		form:       mock.NewMockFormRepo(ctrl),
		group:      mock.NewMockGroupRepo(ctrl),
		submission: mock.NewMockSubmissionRepo(ctrl),
		note:       mock.NewMockNoteRepo(ctrl),
		export:     mock.NewMockExportRepo(ctrl),
		job:        mock.NewMockJobRepo(ctrl),
		setting:    mock.NewMockSettingRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{
		Form:       m.form,
		Group:      m.group,
		Submission: m.submission,
		Note:       m.note,
		Export:     m.export,
		Job:        m.job,
		Setting:    m.setting,
		User:       m.user,
	}
	return repos, m
}

// withSettings makes every settings lookup return the given overrides.
func (m *repoMocks) withSettings(overrides map[string]string) {
	m.setting.EXPECT().All(gomock.Any()).DoAndReturn(func(context.Context) (map[string]string, error) {
		out := make(map[string]string, len(overrides))
		for k, v := range overrides {
			out[k] = v
		}
		return out, nil
	}).AnyTimes()
}

func contactForm() *form.Form {
	return &form.Form{
		ID:                7,
		Name:              "Contact",
		Handle:            "contact",
		TitleFormat:       "{name} ({color})",
		SubmissionEnabled: true,
		AfterSubmit:       form.AfterSubmitMessage,
		Fields: []field.Field{
			{ID: 1, FormID: 7, Handle: "name", Name: "Name", Type: field.TypePlainText, Required: true, SortOrder: 1},
			{ID: 2, FormID: 7, Handle: "color", Name: "Color", Type: field.TypeDropdown, SortOrder: 2,
				Settings: datatypes.NewJSONType(field.Settings{Options: []field.Option{
					{Label: "Red", Value: "red"},
					{Label: "Blue", Value: "blue"},
				}}),
			},
		},
	}
}

type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
