package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form       FormRepo
	Group      GroupRepo
	Submission SubmissionRepo
	Note       NoteRepo
	Export     ExportRepo
	Job        JobRepo
	Setting    SettingRepo
	User       UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:       NewFormRepo(db),
		Group:      NewGroupRepo(db),
		Submission: NewSubmissionRepo(db),
		Note:       NewNoteRepo(db),
		Export:     NewExportRepo(db),
		Job:        NewJobRepo(db),
		Setting:    NewSettingRepo(db),
		User:       NewUserRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:       r.Form.WithTx(tx),
		Group:      r.Group.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Note:       r.Note.WithTx(tx),
		Export:     r.Export.WithTx(tx),
		Job:        r.Job.WithTx(tx),
		Setting:    r.Setting.WithTx(tx),
		User:       r.User.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a transaction. Repos built without a database run fn
// directly so services can be unit tested with mocks.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
