package job

import "context"

// Repository defines data access interface for jobs
type Repository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id uint) (*Job, error)
	FindByExportID(ctx context.Context, exportID uint) ([]Job, error)
	GetQueuedJobs(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateProgress(ctx context.Context, id uint, progress float64) error
	Delete(ctx context.Context, id uint) error
}
