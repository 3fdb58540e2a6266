// Package executor runs queued jobs by type.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/linskybing/forms-go/internal/domain/job"
)

var ErrExecutorNotFound = errors.New("executor not found")

// JobExecutor runs one job to completion.
type JobExecutor interface {
	Execute(ctx context.Context, j *job.Job) error
}

type ExecutorRegistry struct {
	mu        sync.RWMutex
	executors map[job.JobType]JobExecutor
}

func NewExecutorRegistry() *ExecutorRegistry {
	return &ExecutorRegistry{executors: make(map[job.JobType]JobExecutor)}
}

func (r *ExecutorRegistry) Register(t job.JobType, e JobExecutor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[t] = e
}

func (r *ExecutorRegistry) Execute(ctx context.Context, j *job.Job) error {
	r.mu.RLock()
	e, ok := r.executors[j.Type]
	r.mu.RUnlock()
	if !ok {
		return ErrExecutorNotFound
	}
	return e.Execute(ctx, j)
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }

func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks an error that retrying cannot fix.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

func payloadError(j *job.Job) error {
	return Permanent(fmt.Errorf("job %d: missing payload", j.ID))
}
