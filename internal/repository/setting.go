package repository

import (
	"context"

	"github.com/linskybing/forms-go/internal/domain/setting"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepo interface {
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
	WithTx(tx *gorm.DB) SettingRepo
}

type DBSettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *DBSettingRepo {
	return &DBSettingRepo{
		db: db,
	}
}

func (r *DBSettingRepo) All(ctx context.Context) (map[string]string, error) {
	var rows []setting.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *DBSettingRepo) Upsert(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	rows := make([]setting.Setting, 0, len(values))
	for k, v := range values {
		rows = append(rows, setting.Setting{Key: k, Value: v})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}

func (r *DBSettingRepo) WithTx(tx *gorm.DB) SettingRepo {
	if tx == nil {
		return r
	}
	return &DBSettingRepo{
		db: tx,
	}
}
