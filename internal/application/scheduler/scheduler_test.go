package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/scheduler/executor"
)

// MockJobExecutor for testing
type MockJobExecutor struct {
	mu    sync.Mutex
	errs  []error
	calls int
}

func (m *MockJobExecutor) Execute(ctx context.Context, j *job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if len(m.errs) == 0 {
		return nil
	}
	err := m.errs[0]
	m.errs = m.errs[1:]
	return err
}

func (m *MockJobExecutor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// memJobRepo keeps jobs in memory.
type memJobRepo struct {
	mu   sync.Mutex
	jobs map[uint]job.Job
}

func newMemJobRepo(jobs ...job.Job) *memJobRepo {
	r := &memJobRepo{jobs: map[uint]job.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *memJobRepo) Create(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = uint(len(r.jobs) + 1)
	r.jobs[j.ID] = *j
	return nil
}

func (r *memJobRepo) FindByID(ctx context.Context, id uint) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &j, nil
}

func (r *memJobRepo) FindByExportID(ctx context.Context, exportID uint) ([]job.Job, error) {
	return nil, nil
}

func (r *memJobRepo) GetQueuedJobs(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Job
	for _, j := range r.jobs {
		if j.Status == job.JobStatusQueued {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJobRepo) Update(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = *j
	return nil
}

func (r *memJobRepo) UpdateProgress(ctx context.Context, id uint, progress float64) error {
	return nil
}

func (r *memJobRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func (r *memJobRepo) get(id uint) job.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id]
}

func TestNewScheduler(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	sched := NewScheduler(registry, nil, nil)

	if sched == nil {
		t.Fatal("expected non-nil scheduler")
	}
	if sched.jobQueue == nil {
		t.Fatal("expected jobQueue to be initialized")
	}
	if sched.IsRunning() {
		t.Fatal("expected scheduler not running initially")
	}
}

func TestEnqueueJob(t *testing.T) {
	sched := NewScheduler(executor.NewExecutorRegistry(), nil, nil)

	sched.EnqueueJob(&job.Job{ID: 1})
	sched.EnqueueJob(&job.Job{ID: 2})
	sched.EnqueueJob(nil)

	if sched.GetQueueSize() != 2 {
		t.Fatalf("expected 2 jobs, got %d", sched.GetQueueSize())
	}
}

func TestStartAndStop(t *testing.T) {
	sched := NewScheduler(executor.NewExecutorRegistry(), nil, nil)
	sched.SetInterval(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := sched.Start(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline exceeded, got %v", err)
	}
	if sched.IsRunning() {
		t.Fatal("expected scheduler stopped")
	}
}

func TestProcessQueueWithEmptyQueue(t *testing.T) {
	sched := NewScheduler(executor.NewExecutorRegistry(), nil, nil)
	sched.processQueue(context.Background())

	if sched.GetQueueSize() != 0 {
		t.Fatal("expected queue to remain empty")
	}
}

func TestProcessQueueCompletesJob(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, &MockJobExecutor{})
	repo := newMemJobRepo()
	sched := NewScheduler(registry, repo, nil)

	j := job.NewExportJob(4)
	j.ID = 1
	sched.EnqueueJob(j)
	sched.processQueue(context.Background())

	got := repo.get(1)
	if got.Status != job.JobStatusCompleted {
		t.Fatalf("expected job status %s, got %s", job.JobStatusCompleted, got.Status)
	}
	if got.Attempts != 1 || got.StartedAt == nil || got.CompletedAt == nil {
		t.Fatalf("unexpected bookkeeping: %+v", got)
	}
	if got.Progress != 1 {
		t.Fatalf("expected progress 1, got %v", got.Progress)
	}
}

func TestProcessQueueRequeuesTransientError(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, &MockJobExecutor{errs: []error{errors.New("db gone")}})
	repo := newMemJobRepo()
	sched := NewScheduler(registry, repo, nil)

	j := job.NewExportJob(4)
	j.ID = 1
	sched.EnqueueJob(j)
	sched.processQueue(context.Background())

	got := repo.get(1)
	if got.Status != job.JobStatusQueued {
		t.Fatalf("expected job to be queued again, got %s", got.Status)
	}
	if got.ErrorMessage != "db gone" {
		t.Fatalf("expected error message, got %q", got.ErrorMessage)
	}

	// picked up again on the next sync
	sched.syncQueued(context.Background())
	if sched.GetQueueSize() != 1 {
		t.Fatalf("expected job re-enqueued, got %d", sched.GetQueueSize())
	}
}

func TestProcessQueueFailsAfterMaxAttempts(t *testing.T) {
	boom := errors.New("boom")
	exec := &MockJobExecutor{errs: []error{boom, boom, boom}}
	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, exec)
	sched := NewScheduler(registry, nil, nil)

	j := job.NewExportJob(4)
	j.ID = 1
	sched.EnqueueJob(j)
	for sched.GetQueueSize() > 0 {
		sched.processQueue(context.Background())
	}

	if exec.Calls() != job.DefaultMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", job.DefaultMaxAttempts, exec.Calls())
	}
	if j.Status != job.JobStatusFailed {
		t.Fatalf("expected job status %s, got %s", job.JobStatusFailed, j.Status)
	}
}

func TestProcessQueuePermanentErrorFailsImmediately(t *testing.T) {
	exec := &MockJobExecutor{errs: []error{executor.Permanent(errors.New("export not found"))}}
	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, exec)
	sched := NewScheduler(registry, nil, nil)

	j := job.NewExportJob(4)
	j.ID = 1
	sched.EnqueueJob(j)
	sched.processQueue(context.Background())

	if j.Status != job.JobStatusFailed || exec.Calls() != 1 {
		t.Fatalf("expected a single failed attempt, got status %s after %d calls", j.Status, exec.Calls())
	}
	if sched.GetQueueSize() != 0 {
		t.Fatal("expected queue to be empty after processing")
	}
}

func TestProcessQueueWithUnregisteredJobType(t *testing.T) {
	sched := NewScheduler(executor.NewExecutorRegistry(), nil, nil)

	j := &job.Job{ID: 1, Type: "unknown"}
	sched.EnqueueJob(j)
	sched.processQueue(context.Background())

	if sched.GetQueueSize() != 0 {
		t.Fatal("expected queue to be empty after processing")
	}
	if j.Status != job.JobStatusFailed {
		t.Fatalf("expected job status %s, got %s", job.JobStatusFailed, j.Status)
	}
}

func TestSyncQueuedSkipsEnqueued(t *testing.T) {
	repo := newMemJobRepo(
		job.Job{ID: 1, Status: job.JobStatusQueued},
		job.Job{ID: 2, Status: job.JobStatusQueued},
		job.Job{ID: 3, Status: job.JobStatusCompleted},
	)
	sched := NewScheduler(executor.NewExecutorRegistry(), repo, nil)
	sched.syncQueued(context.Background())
	sched.syncQueued(context.Background())

	if sched.GetQueueSize() != 2 {
		t.Fatalf("expected 2 jobs, got %d", sched.GetQueueSize())
	}
}

func TestNotifyRunsWithoutWaitingForTick(t *testing.T) {
	exec := &MockJobExecutor{}
	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, exec)
	repo := newMemJobRepo(job.Job{ID: 1, Type: job.JobTypeExport, Status: job.JobStatusQueued})
	sched := NewScheduler(registry, repo, nil)
	sched.SetInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = sched.Start(ctx)
		close(done)
	}()
	sched.Notify()

	deadline := time.Now().Add(2 * time.Second)
	for repo.get(1).Status != job.JobStatusCompleted {
		if time.Now().After(deadline) {
			t.Fatal("job was not processed after Notify")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done
}
