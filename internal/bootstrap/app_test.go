package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeramljak/charsibot/internal/catalog"
	"github.com/lukeramljak/charsibot/internal/config"
	"github.com/lukeramljak/charsibot/internal/twitch"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                   0,
		APIKey:                 "test-key",
		DBDriver:               config.DriverSQLite,
		SQLitePath:             filepath.Join(t.TempDir(), "nested", "charsibot.db"),
		WorkerCount:            1,
		WorkerQueueSize:        10,
		MetricsRefreshInterval: time.Hour,
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		cat, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, catalog.Default().Types(), cat.Types())
	})

	t.Run("invalid file fails fast", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"collections":[{"collection_type":""}]}`), 0o600))

		_, err := LoadCatalog(path)

		var cfgErr *catalog.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestOpenStorage_SQLiteCreatesDirectory(t *testing.T) {
	cfg := sqliteConfig(t)

	s, err := OpenStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(s.Pool.Close)

	assert.Equal(t, config.DriverSQLite, s.Driver)
	assert.NotNil(t, s.Collections)
	assert.NotNil(t, s.Stats)
	assert.FileExists(t, cfg.SQLitePath)
}

func TestApp_RedemptionFlowAndShutdown(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	app, err := New(ctx, cfg)
	require.NoError(t, err)

	err = app.Chat.HandleRedemption(ctx, twitch.Redemption{
		UserID:      "u1",
		Username:    "alice",
		RewardTitle: "Cooper Series Blind Box",
	})
	require.NoError(t, err)

	view, err := app.BlindBox.GetCollection(ctx, "u1", "alice", catalog.CollectionCoobubu)
	require.NoError(t, err)
	assert.Len(t, view.OwnedSlots, 1)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- app.Run(runCtx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("app did not shut down")
	}
}
