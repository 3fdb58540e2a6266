package repository

import (
	"context"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"gorm.io/gorm"
)

type ExportRepo interface {
	List(ctx context.Context, formID *uint) ([]exportdomain.Export, error)
	FindByID(ctx context.Context, id uint) (*exportdomain.Export, error)
	Create(ctx context.Context, e *exportdomain.Export) error
	Save(ctx context.Context, e *exportdomain.Export) error
	UpdateColumns(ctx context.Context, id uint, values map[string]any) error
	Delete(ctx context.Context, id uint) error
	ReferencedFiles(ctx context.Context) ([]string, error)
	WithTx(tx *gorm.DB) ExportRepo
}

type DBExportRepo struct {
	db *gorm.DB
}

func NewExportRepo(db *gorm.DB) *DBExportRepo {
	return &DBExportRepo{
		db: db,
	}
}

func (r *DBExportRepo) List(ctx context.Context, formID *uint) ([]exportdomain.Export, error) {
	var exports []exportdomain.Export
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if formID != nil {
		q = q.Where("form_id = ?", *formID)
	}
	err := q.Find(&exports).Error
	return exports, err
}

func (r *DBExportRepo) FindByID(ctx context.Context, id uint) (*exportdomain.Export, error) {
	var e exportdomain.Export
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *DBExportRepo) Create(ctx context.Context, e *exportdomain.Export) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *DBExportRepo) Save(ctx context.Context, e *exportdomain.Export) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// UpdateColumns writes the given columns without touching the rest of the row.
func (r *DBExportRepo) UpdateColumns(ctx context.Context, id uint, values map[string]any) error {
	return r.db.WithContext(ctx).Model(&exportdomain.Export{}).Where("id = ?", id).UpdateColumns(values).Error
}

func (r *DBExportRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&exportdomain.Export{}, id).Error
}

func (r *DBExportRepo) ReferencedFiles(ctx context.Context) ([]string, error) {
	var files []string
	err := r.db.WithContext(ctx).Model(&exportdomain.Export{}).Where("file <> ''").Pluck("file", &files).Error
	return files, err
}

func (r *DBExportRepo) WithTx(tx *gorm.DB) ExportRepo {
	if tx == nil {
		return r
	}
	return &DBExportRepo{
		db: tx,
	}
}
