package job

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/forms-go/internal/domain/job"
)

var ErrJobNotRetryable = errors.New("only failed jobs can be retried")

// Notifier wakes a worker that shares the process. Workers in another
// process pick the job up on their next poll.
type Notifier interface {
	Notify()
}

// Service handles job-related business logic
type Service struct {
	jobRepo  job.Repository
	notifier Notifier
}

// NewService creates a new job service. notifier may be nil.
func NewService(jobRepo job.Repository, notifier Notifier) *Service {
	return &Service{
		jobRepo:  jobRepo,
		notifier: notifier,
	}
}

// SetNotifier attaches an in-process worker after construction.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// WithRepo returns a copy writing through repo, typically bound to a
// transaction. The copy never wakes the worker; call Notify after commit.
func (s *Service) WithRepo(repo job.Repository) *Service {
	return &Service{jobRepo: repo}
}

// EnqueueExport queues a job that writes the given export.
func (s *Service) EnqueueExport(ctx context.Context, exportID uint) (*job.Job, error) {
	j := job.NewExportJob(exportID)
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	log.Printf("Queued export job %d for export %d", j.ID, exportID)
	s.Notify()
	return j, nil
}

// GetJob returns a specific job
func (s *Service) GetJob(ctx context.Context, jobID uint) (*job.Job, error) {
	return s.jobRepo.FindByID(ctx, jobID)
}

// LatestForExport returns the most recent job of an export, or nil.
func (s *Service) LatestForExport(ctx context.Context, exportID uint) (*job.Job, error) {
	jobs, err := s.jobRepo.FindByExportID(ctx, exportID)
	if err != nil {
		return nil, err
	}
	var latest *job.Job
	for i := range jobs {
		if latest == nil || jobs[i].ID > latest.ID {
			latest = &jobs[i]
		}
	}
	return latest, nil
}

// CancelForExport drops the jobs of an export that have not finished.
// A job already running keeps its row and fails once its export is gone.
func (s *Service) CancelForExport(ctx context.Context, exportID uint) error {
	jobs, err := s.jobRepo.FindByExportID(ctx, exportID)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if j.Status != job.JobStatusQueued {
			continue
		}
		if err := s.jobRepo.Delete(ctx, j.ID); err != nil {
			return err
		}
	}
	return nil
}

// RetryJob puts a failed job back on the queue with a fresh attempt budget.
func (s *Service) RetryJob(ctx context.Context, jobID uint) (*job.Job, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.JobStatusFailed {
		return nil, ErrJobNotRetryable
	}
	j.Status = job.JobStatusQueued
	j.Attempts = 0
	j.Progress = 0
	j.ErrorMessage = ""
	j.StartedAt = nil
	j.CompletedAt = nil
	j.UpdatedAt = time.Now()
	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}
	s.Notify()
	return j, nil
}

// Notify wakes an in-process worker, if any.
func (s *Service) Notify() {
	if s.notifier != nil {
		s.notifier.Notify()
	}
}
