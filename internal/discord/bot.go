package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/stats"
)

// Services are the domain services slash commands call into
type Services struct {
	BlindBox blindbox.Service
	Stats    stats.Service
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Services Services

	forceSync bool
}

// Config holds the bot configuration
type Config struct {
	Token     string
	AppID     string
	ForceSync bool
}

// New creates a bot with the default slash commands registered
func New(cfg Config, svc Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		Registry: DefaultRegistry(),
		Services: svc,

		forceSync: cfg.ForceSync,
	}, nil
}

// Start opens the gateway connection and syncs slash commands
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if err := b.RegisterCommands(b.Registry, b.forceSync); err != nil {
		_ = b.Session.Close()
		return err
	}

	slog.Info(LogMsgBotRunning, "commands", len(b.Registry.Commands))
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Services)
	}
}
