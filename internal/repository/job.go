package repository

import (
	"context"

	"github.com/linskybing/forms-go/internal/domain/job"
	"gorm.io/gorm"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Create(ctx context.Context, j *job.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *DBJobRepo) FindByID(ctx context.Context, id uint) (*job.Job, error) {
	var j job.Job
	err := r.db.WithContext(ctx).First(&j, id).Error
	return &j, err
}

func (r *DBJobRepo) FindByExportID(ctx context.Context, exportID uint) ([]job.Job, error) {
	var jobs []job.Job
	err := r.db.WithContext(ctx).
		Where("type = ? AND (payload ->> 'export_id')::bigint = ?", job.JobTypeExport, exportID).
		Order("id DESC").
		Find(&jobs).Error
	return jobs, err
}

// GetQueuedJobs returns jobs waiting for a worker, oldest first.
func (r *DBJobRepo) GetQueuedJobs(ctx context.Context) ([]job.Job, error) {
	var jobs []job.Job
	err := r.db.WithContext(ctx).Where("status = ?", job.JobStatusQueued).
		Order("created_at ASC, id ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) Update(ctx context.Context, j *job.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *DBJobRepo) UpdateProgress(ctx context.Context, id uint, progress float64) error {
	return r.db.WithContext(ctx).Model(&job.Job{}).
		Where("id = ?", id).
		UpdateColumn("progress", progress).Error
}

func (r *DBJobRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&job.Job{}, id).Error
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
