package repository

import (
	"context"

	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	List(ctx context.Context, groupID *uint) ([]form.Form, error)
	FindByID(ctx context.Context, id uint) (*form.Form, error)
	FindByHandle(ctx context.Context, handle string) (*form.Form, error)
	FindWithFields(ctx context.Context, id uint) (*form.Form, error)
	Create(ctx context.Context, f *form.Form) error
	Update(ctx context.Context, f *form.Form) error
	Delete(ctx context.Context, id uint) error
	ReplaceFields(ctx context.Context, formID uint, fields []field.Field) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func orderedFields(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

func (r *DBFormRepo) List(ctx context.Context, groupID *uint) ([]form.Form, error) {
	var forms []form.Form
	q := r.db.WithContext(ctx).Order("name ASC")
	if groupID != nil {
		q = q.Where("group_id = ?", *groupID)
	}
	err := q.Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByID(ctx context.Context, id uint) (*form.Form, error) {
	var f form.Form
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *DBFormRepo) FindByHandle(ctx context.Context, handle string) (*form.Form, error) {
	var f form.Form
	err := r.db.WithContext(ctx).Preload("Fields", orderedFields).Where("handle = ?", handle).First(&f).Error
	return &f, err
}

func (r *DBFormRepo) FindWithFields(ctx context.Context, id uint) (*form.Form, error) {
	var f form.Form
	err := r.db.WithContext(ctx).Preload("Fields", orderedFields).First(&f, id).Error
	return &f, err
}

func (r *DBFormRepo) Create(ctx context.Context, f *form.Form) error {
	return r.db.WithContext(ctx).Omit("Fields").Create(f).Error
}

func (r *DBFormRepo) Update(ctx context.Context, f *form.Form) error {
	return r.db.WithContext(ctx).Omit("Fields").Save(f).Error
}

func (r *DBFormRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&form.Form{}, id).Error
}

// ReplaceFields swaps the field layout of a form. Fields are matched by
// handle so existing ids, and the export criteria keyed by them, survive.
func (r *DBFormRepo) ReplaceFields(ctx context.Context, formID uint, fields []field.Field) error {
	db := r.db.WithContext(ctx)
	var existing []field.Field
	if err := db.Where("form_id = ?", formID).Find(&existing).Error; err != nil {
		return err
	}
	byHandle := make(map[string]field.Field, len(existing))
	for _, f := range existing {
		byHandle[f.Handle] = f
	}

	keep := make([]uint, 0, len(fields))
	for i := range fields {
		fields[i].FormID = formID
		fields[i].SortOrder = i + 1
		if old, ok := byHandle[fields[i].Handle]; ok {
			fields[i].ID = old.ID
			fields[i].CreatedAt = old.CreatedAt
		}
		if err := db.Save(&fields[i]).Error; err != nil {
			return err
		}
		keep = append(keep, fields[i].ID)
	}

	del := db.Where("form_id = ?", formID)
	if len(keep) > 0 {
		del = del.Where("id NOT IN ?", keep)
	}
	return del.Delete(&field.Field{}).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
