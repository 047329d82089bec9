package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Log messages - completed collections refresh
const (
	LogMsgCompletedRefreshed = "Completed collections gauge refreshed"
)

// Error messages
const (
	ErrMsgQueueFull   = "worker queue is full"
	ErrMsgPoolStopped = "worker pool is stopped"
)
