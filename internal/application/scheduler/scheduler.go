package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/scheduler/executor"
	"github.com/linskybing/forms-go/internal/scheduler/queue"
	"go.uber.org/zap"
)

const DefaultInterval = 5 * time.Second

// Scheduler pulls queued jobs from the repository and runs them one at a time.
type Scheduler struct {
	jobQueue *queue.JobQueue
	registry *executor.ExecutorRegistry
	jobRepo  job.Repository
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
	wake     chan struct{}

	mu       sync.Mutex
	running  bool
	enqueued map[uint]bool
}

// NewScheduler creates a new scheduler. jobRepo may be nil for in-memory use.
func NewScheduler(registry *executor.ExecutorRegistry, jobRepo job.Repository, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		jobQueue: queue.NewJobQueue(),
		registry: registry,
		jobRepo:  jobRepo,
		interval: DefaultInterval,
		log:      log,
		now:      time.Now,
		wake:     make(chan struct{}, 1),
		enqueued: make(map[uint]bool),
	}
}

// SetInterval changes the polling period. Call before Start.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Start polls until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.setRunning(true)
	s.log.Info("scheduler started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.setRunning(false)
			s.log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
		case <-s.wake:
		}
		s.syncQueued(ctx)
		for s.GetQueueSize() > 0 && ctx.Err() == nil {
			s.processQueue(ctx)
		}
	}
}

// Notify asks a running scheduler to poll now instead of waiting for the tick.
func (s *Scheduler) Notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// EnqueueJob adds a job to queue
func (s *Scheduler) EnqueueJob(j *job.Job) {
	if j == nil {
		return
	}
	s.mu.Lock()
	s.enqueued[j.ID] = true
	s.mu.Unlock()
	s.jobQueue.Push(j)
}

func (s *Scheduler) release(id uint) {
	s.mu.Lock()
	delete(s.enqueued, id)
	s.mu.Unlock()
}

func (s *Scheduler) update(ctx context.Context, j *job.Job) {
	if s.jobRepo == nil {
		return
	}
	if err := s.jobRepo.Update(ctx, j); err != nil {
		s.log.Error("job update failed", zap.Uint("job_id", j.ID), zap.Error(err))
	}
}

// processQueue runs the oldest pending job
func (s *Scheduler) processQueue(ctx context.Context) {
	j := s.jobQueue.Pop()
	if j == nil {
		return
	}
	defer s.release(j.ID)
	log := s.log.With(zap.Uint("job_id", j.ID), zap.String("type", string(j.Type)))

	started := s.now()
	j.Status = job.JobStatusRunning
	j.Attempts++
	j.StartedAt = &started
	j.ErrorMessage = ""
	s.update(ctx, j)

	err := s.registry.Execute(ctx, j)
	if errors.Is(err, executor.ErrExecutorNotFound) {
		log.Warn("job executor not found")
		j.Status = job.JobStatusFailed
		j.ErrorMessage = err.Error()
		s.update(ctx, j)
		return
	}

	finished := s.now()
	if err == nil {
		j.Status = job.JobStatusCompleted
		j.Progress = 1
		j.CompletedAt = &finished
		s.update(ctx, j)
		log.Info("job completed", zap.Duration("took", finished.Sub(started)))
		return
	}

	j.ErrorMessage = err.Error()
	if executor.IsPermanent(err) || !j.CanRetry() {
		j.Status = job.JobStatusFailed
		j.CompletedAt = &finished
		log.Error("job failed", zap.Int("attempts", j.Attempts), zap.Error(err))
	} else {
		j.Status = job.JobStatusQueued
		log.Warn("job will be retried", zap.Int("attempts", j.Attempts), zap.Error(err))
	}
	s.update(ctx, j)
	if j.Status == job.JobStatusQueued && s.jobRepo == nil {
		s.jobQueue.Push(j)
	}
}

func (s *Scheduler) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// IsRunning returns if active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetQueueSize returns pending count
func (s *Scheduler) GetQueueSize() int {
	return s.jobQueue.Len()
}

// syncQueued fetches queued jobs from the repository and enqueues them.
func (s *Scheduler) syncQueued(ctx context.Context) {
	if s.jobRepo == nil {
		return
	}
	jbs, err := s.jobRepo.GetQueuedJobs(ctx)
	if err != nil {
		s.log.Error("load queued jobs failed", zap.Error(err))
		return
	}
	for i := range jbs {
		s.mu.Lock()
		seen := s.enqueued[jbs[i].ID]
		s.mu.Unlock()
		if seen {
			continue
		}
		s.EnqueueJob(&jbs[i])
	}
}
