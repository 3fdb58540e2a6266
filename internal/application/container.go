package application

import (
	"github.com/linskybing/forms-go/internal/antispam"
	"github.com/linskybing/forms-go/internal/application/job"
	"github.com/linskybing/forms-go/internal/config"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/mail"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/storage"
	"go.uber.org/zap"
)

// Deps are the collaborators the services share.
type Deps struct {
	Settings   config.Settings
	TokenStore antispam.TokenStore
	Recaptcha  RecaptchaVerifier
	Files      ExportFiles
	Mirror     storage.Mirror
	Publisher  events.Publisher
	Mailer     mail.Mailer // defaults to queueing on Publisher
	Notifier   job.Notifier
	Log        *zap.Logger
}

type Services struct {
	Settings   *SettingsService
	Group      *GroupService
	Form       *FormService
	Submission *SubmissionService
	Note       *NoteService
	Export     *ExportService
	User       *UserService
	Job        *job.Service

	Checker *antispam.Checker
	Runner  *export.Runner
}

func New(repos *repository.Repos, deps Deps) *Services {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	if deps.TokenStore == nil {
		deps.TokenStore = antispam.NewMemoryStore()
	}

	settings := NewSettingsService(repos, deps.Settings)
	checker := antispam.NewChecker(deps.TokenStore, settings.Policy, antispam.WithLogger(log.Named("antispam")))
	runner := export.NewRunner(repos.Form, repos.Submission, repos.Export, settings.ExportOptions, log.Named("export"))
	jobs := job.NewService(repos.Job, deps.Notifier)
	if deps.Mailer == nil && deps.Publisher != nil {
		deps.Mailer = mail.NewEventMailer(deps.Publisher)
	}
	exports := NewExportService(repos, runner, deps.Files, jobs, deps.Mirror, log.Named("export"))

	return &Services{
		Settings:   settings,
		Group:      NewGroupService(repos),
		Form:       NewFormService(repos, exports),
		Submission: NewSubmissionService(repos, settings, checker, deps.Recaptcha, deps.Publisher, log.Named("submission")).WithMailer(deps.Mailer),
		Note:       NewNoteService(repos),
		Export:     exports,
		User:       NewUserService(repos),
		Job:        jobs,
		Checker:    checker,
		Runner:     runner,
	}
}
