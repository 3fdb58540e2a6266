package handlers

import (
	"github.com/linskybing/forms-go/internal/application"
)

type Handlers struct {
	Settings   *SettingsHandler
	Group      *GroupHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Note       *NoteHandler
	Export     *ExportHandler
	Public     *PublicHandler
	User       *UserHandler
	Job        *JobHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Settings:   NewSettingsHandler(svc.Settings),
		Group:      NewGroupHandler(svc.Group),
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission, svc.Export),
		Note:       NewNoteHandler(svc.Note),
		Export:     NewExportHandler(svc.Export),
		Public:     NewPublicHandler(svc.Form, svc.Submission, svc.Settings, svc.Checker),
		User:       NewUserHandler(svc.User),
		Job:        NewJobHandler(svc.Job),
	}
}
