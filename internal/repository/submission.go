package repository

import (
	"context"
	"time"

	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/export"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	FindByID(ctx context.Context, id uint) (*submission.Submission, error)
	ListByForm(ctx context.Context, formID uint, limit, offset int) ([]submission.Submission, int64, error)
	Recent(ctx context.Context, limit int) ([]submission.Submission, error)
	Create(ctx context.Context, s *submission.Submission) error
	Update(ctx context.Context, s *submission.Submission) error
	Delete(ctx context.Context, id uint) error
	FindSubmissions(ctx context.Context, q export.Query) ([]submission.Submission, error)
	CountSubmissions(ctx context.Context, q export.Query) (int64, error)
	MaxSubmissionID(ctx context.Context, formID uint) (uint, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

const newestFirst = "created_at DESC, id DESC"

func (r *DBSubmissionRepo) FindByID(ctx context.Context, id uint) (*submission.Submission, error) {
	var s submission.Submission
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *DBSubmissionRepo) ListByForm(ctx context.Context, formID uint, limit, offset int) ([]submission.Submission, int64, error) {
	var (
		subs  []submission.Submission
		total int64
	)
	q := r.db.WithContext(ctx).Model(&submission.Submission{}).Where("form_id = ?", formID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}
	err := q.Order(newestFirst).Limit(limit).Offset(offset).Find(&subs).Error
	return subs, total, err
}

func (r *DBSubmissionRepo) Recent(ctx context.Context, limit int) ([]submission.Submission, error) {
	var subs []submission.Submission
	if limit <= 0 {
		limit = 5
	}
	err := r.db.WithContext(ctx).Order(newestFirst).Limit(limit).Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) Create(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBSubmissionRepo) Update(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *DBSubmissionRepo) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("submission_id = ?", id).Delete(&submission.Note{}).Error; err != nil {
		return err
	}
	return db.Delete(&submission.Submission{}, id).Error
}

func (r *DBSubmissionRepo) scope(ctx context.Context, q export.Query) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&submission.Submission{}).Where("form_id = ?", q.FormID)
	if q.MaxID > 0 {
		tx = tx.Where("id <= ?", q.MaxID)
	}
	if len(q.IDs) > 0 {
		return tx.Where("id IN ?", q.IDs)
	}
	return ApplyFilter(tx, q.Filter)
}

func (r *DBSubmissionRepo) FindSubmissions(ctx context.Context, q export.Query) ([]submission.Submission, error) {
	if len(q.IDs) == 0 && q.Filter.Impossible() {
		return nil, nil
	}
	tx := r.scope(ctx, q).Order(newestFirst)
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	var subs []submission.Submission
	err := tx.Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) CountSubmissions(ctx context.Context, q export.Query) (int64, error) {
	if len(q.IDs) == 0 && q.Filter.Impossible() {
		return 0, nil
	}
	var n int64
	err := r.scope(ctx, q).Count(&n).Error
	return n, err
}

// MaxSubmissionID is the snapshot bound recorded on new exports.
func (r *DBSubmissionRepo) MaxSubmissionID(ctx context.Context, formID uint) (uint, error) {
	var id uint
	err := r.db.WithContext(ctx).Model(&submission.Submission{}).
		Where("form_id = ?", formID).
		Select("COALESCE(MAX(id), 0)").
		Scan(&id).Error
	return id, err
}

// DeleteOlderThan removes submissions created before cutoff along with their notes.
func (r *DBSubmissionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	db := r.db.WithContext(ctx)
	old := db.Model(&submission.Submission{}).Select("id").Where("created_at < ?", cutoff)
	if err := db.Where("submission_id IN (?)", old).Delete(&submission.Note{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("created_at < ?", cutoff).Delete(&submission.Submission{})
	return res.RowsAffected, res.Error
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}
