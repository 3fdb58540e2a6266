package repository

import (
	"context"

	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/group"
	"gorm.io/gorm"
)

type GroupRepo interface {
	List(ctx context.Context) ([]group.FormGroup, error)
	FindByID(ctx context.Context, id uint) (*group.FormGroup, error)
	Save(ctx context.Context, g *group.FormGroup) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) GroupRepo
}

type DBGroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *DBGroupRepo {
	return &DBGroupRepo{
		db: db,
	}
}

func (r *DBGroupRepo) List(ctx context.Context) ([]group.FormGroup, error) {
	var groups []group.FormGroup
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *DBGroupRepo) FindByID(ctx context.Context, id uint) (*group.FormGroup, error) {
	var g group.FormGroup
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *DBGroupRepo) Save(ctx context.Context, g *group.FormGroup) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes the group and leaves its forms ungrouped.
func (r *DBGroupRepo) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&form.Form{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
		return err
	}
	return db.Delete(&group.FormGroup{}, id).Error
}

func (r *DBGroupRepo) WithTx(tx *gorm.DB) GroupRepo {
	if tx == nil {
		return r
	}
	return &DBGroupRepo{
		db: tx,
	}
}
