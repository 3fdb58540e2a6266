package repository

import (
	"context"

	"github.com/linskybing/forms-go/internal/domain/submission"
	"gorm.io/gorm"
)

type NoteRepo interface {
	ListBySubmission(ctx context.Context, submissionID uint) ([]submission.Note, error)
	FindByID(ctx context.Context, id uint) (*submission.Note, error)
	Create(ctx context.Context, n *submission.Note) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) NoteRepo
}

type DBNoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *DBNoteRepo {
	return &DBNoteRepo{
		db: db,
	}
}

func (r *DBNoteRepo) ListBySubmission(ctx context.Context, submissionID uint) ([]submission.Note, error) {
	var notes []submission.Note
	err := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).Order("created_at ASC, id ASC").Find(&notes).Error
	return notes, err
}

func (r *DBNoteRepo) FindByID(ctx context.Context, id uint) (*submission.Note, error) {
	var n submission.Note
	err := r.db.WithContext(ctx).First(&n, id).Error
	return &n, err
}

func (r *DBNoteRepo) Create(ctx context.Context, n *submission.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *DBNoteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&submission.Note{}, id).Error
}

func (r *DBNoteRepo) WithTx(tx *gorm.DB) NoteRepo {
	if tx == nil {
		return r
	}
	return &DBNoteRepo{
		db: tx,
	}
}
