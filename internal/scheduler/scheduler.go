package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled   = "Job scheduled"
	LogMsgEnqueueSkipped = "Scheduled job skipped, worker queue unavailable"
	LogMsgStopFailed     = "Scheduler shutdown failed"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

// Scheduler fires jobs on fixed intervals and hands them to the worker pool
type Scheduler struct {
	sched gocron.Scheduler
	pool  Enqueuer
}

// New creates a new scheduler. Nothing runs until Start.
func New(pool Enqueuer) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{sched: sched, pool: pool}, nil
}

// Schedule registers a job to run every interval. With immediate set the
// first run happens on Start instead of one interval later.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job, immediate bool) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if immediate {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			// A full queue means the previous run is still pending
			if err := s.pool.TryEnqueue(job); err != nil {
				logger.FromContext(context.Background()).Warn(LogMsgEnqueueSkipped, "job", name, "error", err)
			}
		}),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}

	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "job", name, "interval", interval)
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Stop stops all scheduled jobs and waits for running tasks
func (s *Scheduler) Stop() {
	if err := s.sched.Shutdown(); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgStopFailed, "error", err)
	}
}
