// Package queue holds jobs waiting for an executor.
package queue

import (
	"container/heap"
	"sync"

	"github.com/linskybing/forms-go/internal/domain/job"
)

// JobQueue pops jobs in id order, so older jobs run first.
type JobQueue struct {
	mu    sync.Mutex
	items jobHeap
}

func NewJobQueue() *JobQueue {
	return &JobQueue{}
}

// Push ignores nil jobs.
func (q *JobQueue) Push(j *job.Job) {
	if j == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.items, j)
}

// Pop returns nil when the queue is empty.
func (q *JobQueue) Pop() *job.Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.items).(*job.Job)
}

func (q *JobQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

type jobHeap []*job.Job

func (h jobHeap) Len() int           { return len(h) }
func (h jobHeap) Less(i, j int) bool { return h[i].ID < h[j].ID }
func (h jobHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) {
	*h = append(*h, x.(*job.Job))
}

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}
