package worker

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/metrics"
)

// fakeBlindBox implements only what the refresh job calls
type fakeBlindBox struct {
	blindbox.Service
	completed []domain.CompletedCollection
	err       error
}

func (f *fakeBlindBox) CompletedCollections(context.Context) ([]domain.CompletedCollection, error) {
	return f.completed, f.err
}

func (f *fakeBlindBox) Catalogs() []domain.CollectionCatalog {
	return []domain.CollectionCatalog{
		{CollectionType: "job_alpha"},
		{CollectionType: "job_beta"},
	}
}

func TestCompletedCollectionsJob(t *testing.T) {
	svc := &fakeBlindBox{completed: []domain.CompletedCollection{
		{CollectionType: "job_alpha", Usernames: []string{"alice", "bob"}},
	}}

	require.NoError(t, NewCompletedCollectionsJob(svc).Process(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CollectionsCompleted.WithLabelValues("job_alpha")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CollectionsCompleted.WithLabelValues("job_beta")))

	// A later refresh lowers the gauge after a reset
	svc.completed = nil
	require.NoError(t, NewCompletedCollectionsJob(svc).Process(context.Background()))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CollectionsCompleted.WithLabelValues("job_alpha")))
}

func TestCompletedCollectionsJob_Error(t *testing.T) {
	svc := &fakeBlindBox{err: domain.ErrStorage}

	err := NewCompletedCollectionsJob(svc).Process(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}
