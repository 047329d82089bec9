package worker

import (
	"context"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/metrics"
)

// CompletedCollectionsJob refreshes the completed-collections gauge
type CompletedCollectionsJob struct {
	svc blindbox.Service
}

// NewCompletedCollectionsJob creates the gauge refresh job
func NewCompletedCollectionsJob(svc blindbox.Service) *CompletedCollectionsJob {
	return &CompletedCollectionsJob{svc: svc}
}

// Process implements Job
func (j *CompletedCollectionsJob) Process(ctx context.Context) error {
	completed, err := j.svc.CompletedCollections(ctx)
	if err != nil {
		return err
	}

	catalogs := j.svc.Catalogs()
	types := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		types = append(types, c.CollectionType)
	}

	metrics.SetCompletedCollections(types, completed)
	logger.FromContext(ctx).Debug(LogMsgCompletedRefreshed, "collections", len(completed))
	return nil
}
