package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/catalog"
	"github.com/lukeramljak/charsibot/internal/config"
	"github.com/lukeramljak/charsibot/internal/discord"
	"github.com/lukeramljak/charsibot/internal/scheduler"
	"github.com/lukeramljak/charsibot/internal/server"
	"github.com/lukeramljak/charsibot/internal/sse"
	"github.com/lukeramljak/charsibot/internal/stats"
	"github.com/lukeramljak/charsibot/internal/twitch"
	"github.com/lukeramljak/charsibot/internal/worker"
)

// App is the fully wired bot
type App struct {
	cfg       *config.Config
	storage   *Storage
	hub       *sse.Hub
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
	server    *server.Server

	BlindBox blindbox.Service
	Stats    stats.Service
	Chat     *twitch.Router

	twitch  *twitch.Client
	discord *discord.Bot
}

// LoadCatalog reads the catalog file at path, or returns the built-in
// catalog when path is empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", path, "collections", cat.Types())
	return cat, nil
}

// New builds every component. Nothing listens or connects until Run.
func New(ctx context.Context, cfg *config.Config) (app *App, err error) {
	cat, err := LoadCatalog(cfg.BlindBoxConfigPath)
	if err != nil {
		return nil, err
	}

	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, hub := InitializeEventSystem()

	app = &App{cfg: cfg, storage: storage, hub: hub}
	defer func() {
		if err != nil {
			GracefulShutdown(context.Background(), ShutdownComponents{Hub: hub, Storage: storage.Pool})
		}
	}()

	app.BlindBox = blindbox.NewService(cat, storage.Collections, bus)
	app.Stats = stats.NewService(storage.Stats, bus)

	app.pool = worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	app.scheduler, err = scheduler.New(app.pool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateScheduler, err)
	}
	completed := worker.NewCompletedCollectionsJob(app.BlindBox)
	if err = app.scheduler.Schedule(JobNameCompletedCollections, cfg.MetricsRefreshInterval, completed, true); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}

	app.Chat = twitch.NewRouter(cfg.TwitchChannel, cat, app.BlindBox, app.Stats, nil, nil)
	if cfg.TwitchEnabled() {
		app.twitch, err = twitch.NewClient(twitch.Config{
			Username:   cfg.TwitchBotUsername,
			OAuthToken: cfg.TwitchOAuthToken,
			Channel:    cfg.TwitchChannel,
		}, app.Chat, app.pool)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateTwitch, err)
		}
	}

	if cfg.DiscordEnabled() {
		app.discord, err = discord.New(
			discord.Config{
				Token:     cfg.DiscordToken,
				AppID:     cfg.DiscordAppID,
				ForceSync: cfg.DiscordForceCommandSync,
			},
			discord.Services{BlindBox: app.BlindBox, Stats: app.Stats},
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscord, err)
		}
	}

	app.server = server.NewServer(
		server.Config{Port: cfg.Port, APIKey: cfg.APIKey},
		storage.Pool, hub, app.BlindBox, app.Stats, app.Chat,
	)
	return app, nil
}

// Run starts every component and blocks until ctx is cancelled or one of
// them fails, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.pool.Start()
	a.scheduler.Start()

	errCh := make(chan error, 3)

	go func() { errCh <- a.server.Start() }()

	if a.twitch != nil {
		slog.Info(LogMsgTwitchStarting, "channel", a.cfg.TwitchChannel)
		go func() { errCh <- a.twitch.Run(ctx) }()
	} else {
		slog.Info(LogMsgTwitchDisabled)
	}

	if a.discord != nil {
		slog.Info(LogMsgDiscordStarting)
		go func() { errCh <- a.discord.Run(ctx) }()
	} else {
		slog.Info(LogMsgDiscordDisabled)
	}

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info(LogMsgShutdownSignal)
	case runErr = <-errCh:
		if runErr != nil {
			slog.Error(LogMsgComponentFailed, "error", runErr)
		}
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer stop()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:    a.server,
		Scheduler: a.scheduler,
		Pool:      a.pool,
		Hub:       a.hub,
		Storage:   a.storage.Pool,
	})
	return runErr
}
