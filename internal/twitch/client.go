package twitch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	twitchirc "github.com/gempir/go-twitch-irc/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lukeramljak/charsibot/internal/worker"
)

// Enqueuer accepts jobs without blocking the IRC read loop
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

// Config holds the chat connection settings
type Config struct {
	Username   string
	OAuthToken string
	Channel    string
}

// Client connects to Twitch chat and hands commands to a worker pool
type Client struct {
	irc    *twitchirc.Client
	cfg    Config
	router *Router
	pool   Enqueuer
	seen   *lru.Cache[string, struct{}]
}

// NewClient creates a chat client. It does not connect until Run.
func NewClient(cfg Config, router *Router, pool Enqueuer) (*Client, error) {
	seen, err := lru.New[string, struct{}](DedupeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedupe cache: %w", err)
	}

	oauth := cfg.OAuthToken
	if !strings.HasPrefix(oauth, "oauth:") {
		oauth = "oauth:" + oauth
	}

	c := &Client{
		irc:    twitchirc.NewClient(cfg.Username, oauth),
		cfg:    cfg,
		router: router,
		pool:   pool,
		seen:   seen,
	}
	c.irc.OnPrivateMessage(c.onPrivateMessage)
	c.irc.OnConnect(func() {
		slog.Info(LogMsgConnected, "channel", cfg.Channel, "user", cfg.Username)
	})
	router.SetSayer(c)
	return c, nil
}

// Say sends text to a channel
func (c *Client) Say(channel, text string) {
	c.irc.Say(channel, text)
}

// Run joins the channel and blocks until ctx is cancelled or the
// connection fails.
func (c *Client) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.irc.Disconnect()
		case <-done:
		}
	}()

	c.irc.Join(c.cfg.Channel)
	err := c.irc.Connect()
	if errors.Is(err, twitchirc.ErrClientDisconnected) {
		slog.Info(LogMsgDisconnected, "channel", c.cfg.Channel)
		return nil
	}
	return err
}

func (c *Client) onPrivateMessage(pm twitchirc.PrivateMessage) {
	c.handle(toMessage(pm))
}

func (c *Client) handle(msg Message) {
	if strings.EqualFold(msg.Login, c.cfg.Username) {
		return
	}
	if msg.ID != "" {
		if dup, _ := c.seen.ContainsOrAdd(msg.ID, struct{}{}); dup {
			slog.Debug(LogMsgDuplicateMessage, "id", msg.ID)
			return
		}
	}

	c.router.Observe(msg)
	if !msg.IsCommand() {
		return
	}

	slog.Debug(LogMsgCommandReceived, "user", msg.Login, "text", msg.Text)
	job := worker.JobFunc(func(ctx context.Context) error {
		return c.router.HandleMessage(ctx, msg)
	})
	if err := c.pool.TryEnqueue(job); err != nil {
		slog.Warn(LogMsgEnqueueFailed, "user", msg.Login, "text", msg.Text, "error", err)
	}
}

func toMessage(pm twitchirc.PrivateMessage) Message {
	display := pm.User.DisplayName
	if display == "" {
		display = pm.User.Name
	}
	return Message{
		ID:          pm.ID,
		UserID:      pm.User.ID,
		Login:       strings.ToLower(pm.User.Name),
		DisplayName: display,
		Text:        pm.Message,
		IsModerator: pm.User.Badges[BadgeModerator] > 0 || pm.User.Badges[BadgeBroadcaster] > 0,
	}
}
