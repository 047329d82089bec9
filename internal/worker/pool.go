package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/metrics"
)

var (
	ErrQueueFull   = errors.New(ErrMsgQueueFull)
	ErrPoolStopped = errors.New(ErrMsgPoolStopped)
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to Job
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines. Stop lets queued jobs
// finish before returning.
type Pool struct {
	workers  int
	timeout  time.Duration
	jobQueue chan Job
	wg       sync.WaitGroup

	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		timeout:  DefaultJobTimeout,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		p.run(job)
	}
}

// run executes one job. A panicking job is logged and does not take the worker down.
func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.WorkerJobs.WithLabelValues(metrics.ResultPanic).Inc()
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()

	if err := job.Process(ctx); err != nil {
		metrics.WorkerJobs.WithLabelValues(metrics.ResultError).Inc()
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	metrics.WorkerJobs.WithLabelValues(metrics.ResultOK).Inc()
}

// Enqueue adds a job, waiting for queue space until ctx is done
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		return nil
	case <-ctx.Done():
		metrics.WorkerJobs.WithLabelValues(metrics.ResultRejected).Inc()
		return ctx.Err()
	}
}

// TryEnqueue adds a job without blocking and returns ErrQueueFull when there is no room
func (p *Pool) TryEnqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		return nil
	default:
		metrics.WorkerJobs.WithLabelValues(metrics.ResultRejected).Inc()
		return ErrQueueFull
	}
}

// Stop rejects new jobs, drains the queue and waits for the workers.
// It is safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.jobQueue)
		p.mu.Unlock()

		p.wg.Wait()
		metrics.WorkerQueueDepth.Set(0)
		logger.FromContext(context.Background()).Info(LogMsgWorkerPoolStopped)
	})
}
