package twitch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/catalog"
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/metrics"
	"github.com/lukeramljak/charsibot/internal/stats"
)

// Sayer sends a message to a chat channel
type Sayer interface {
	Say(channel, text string)
}

// Message is a chat message, independent of the IRC library
type Message struct {
	ID          string
	UserID      string
	Login       string
	DisplayName string
	Text        string
	IsModerator bool
}

// IsCommand reports whether the message starts with "!"
func (m Message) IsCommand() bool {
	return strings.HasPrefix(strings.TrimSpace(m.Text), "!")
}

// Command returns the normalized command name without "!"
func (m Message) Command() string {
	fields := strings.Fields(m.Text)
	if len(fields) == 0 {
		return ""
	}
	return catalog.NormalizeCommand(fields[0])
}

// Redemption is a channel point reward redemption
type Redemption struct {
	UserID      string `json:"user_id" validate:"required,max=100"`
	Username    string `json:"username" validate:"required,max=100"`
	RewardTitle string `json:"reward_title" validate:"required,max=100"`
}

// Router dispatches chat commands and reward redemptions to services
type Router struct {
	channel  string
	catalog  *catalog.Catalog
	blindBox blindbox.Service
	stats    stats.Service
	users    *UserCache
	sayer    Sayer
}

// NewRouter creates a router replying on channel through sayer.
// A nil sayer logs replies instead of sending them.
func NewRouter(channel string, cat *catalog.Catalog, blindBox blindbox.Service, statsSvc stats.Service, users *UserCache, sayer Sayer) *Router {
	if users == nil {
		users = NewUserCache(UserCacheSize, UserCacheTTL)
	}
	return &Router{
		channel:  channel,
		catalog:  cat,
		blindBox: blindBox,
		stats:    statsSvc,
		users:    users,
		sayer:    sayer,
	}
}

// SetSayer replaces the reply target once a chat connection exists
func (r *Router) SetSayer(sayer Sayer) {
	r.sayer = sayer
}

// Observe remembers the chatter so moderators can address them by login
func (r *Router) Observe(msg Message) {
	r.users.Remember(msg.Login, msg.UserID)
}

// HandleMessage runs the chat command in msg, if any
func (r *Router) HandleMessage(ctx context.Context, msg Message) error {
	r.Observe(msg)
	if !msg.IsCommand() {
		return nil
	}

	ctx = event.WithSource(ctx, event.SourceTwitch)
	log := logger.FromContext(ctx)
	cmd := msg.Command()

	var err error
	switch cmd {
	case CmdStats:
		err = r.handleStats(ctx, msg)
	case CmdAddStat, CmdRemoveStat:
		err = r.handleModifyStat(ctx, msg, cmd == CmdRemoveStat)
	case CmdLeaderboard:
		err = r.handleLeaderboard(ctx)
	case CmdCollections:
		err = r.handleCollections(ctx)
	default:
		route, ok := r.catalog.ResolveCommand(cmd)
		if !ok {
			return nil
		}
		err = r.handleCollectionCommand(ctx, msg, route)
	}

	metrics.ChatCommands.WithLabelValues(PlatformTwitch, cmd).Inc()
	if err != nil {
		log.Error(LogMsgCommandFailed, "command", cmd, "user", msg.Login, "error", err)
		return err
	}
	log.Debug(LogMsgCommandHandled, "command", cmd, "user", msg.Login)
	return nil
}

func (r *Router) handleStats(ctx context.Context, msg Message) error {
	s, err := r.stats.GetStats(ctx, msg.UserID, msg.DisplayName)
	if err != nil {
		return err
	}
	r.say(ctx, stats.FormatStats(msg.DisplayName, s))
	return nil
}

func (r *Router) handleModifyStat(ctx context.Context, msg Message, remove bool) error {
	if !r.requireModerator(ctx, msg) {
		return nil
	}

	parsed, err := stats.ParseModifyStatCommand(msg.Text, remove)
	if err != nil {
		var cmdErr *stats.CommandError
		if errors.As(err, &cmdErr) {
			logger.FromContext(ctx).Debug(LogMsgInvalidModifyCommand, "text", msg.Text, "reason", cmdErr.Message)
			r.say(ctx, cmdErr.Message)
			return nil
		}
		return err
	}

	targetID, ok := r.users.Lookup(parsed.Login)
	if !ok {
		r.say(ctx, fmt.Sprintf(MsgUnknownUser, parsed.Login))
		return nil
	}

	updated, err := r.stats.ModifyStat(ctx, targetID, parsed.Login, parsed.Column, parsed.Delta())
	if errors.Is(err, domain.ErrInvalidStat) {
		r.say(ctx, fmt.Sprintf(MsgUnknownStat, statNames()))
		return nil
	}
	if err != nil {
		return err
	}
	r.say(ctx, stats.FormatStats(parsed.Login, updated))
	return nil
}

func (r *Router) handleLeaderboard(ctx context.Context) error {
	leaders, err := r.stats.Leaderboard(ctx)
	if err != nil {
		return err
	}
	r.say(ctx, stats.FormatLeaderboard(leaders))
	return nil
}

func (r *Router) handleCollections(ctx context.Context) error {
	completed, err := r.blindBox.CompletedCollections(ctx)
	if err != nil {
		return err
	}
	r.say(ctx, FormatCompletedCollections(completed))
	return nil
}

func (r *Router) handleCollectionCommand(ctx context.Context, msg Message, route catalog.CommandRoute) error {
	if route.Action.ModeratorOnly() && !r.requireModerator(ctx, msg) {
		return nil
	}

	req := domain.RedemptionRequest{
		UserID:         msg.UserID,
		Username:       msg.DisplayName,
		CollectionType: route.CollectionType,
	}

	switch route.Action {
	case catalog.ActionRedeem:
		_, err := r.blindBox.Redeem(ctx, req)
		return err
	case catalog.ActionDisplay:
		_, err := r.blindBox.ShowCollection(ctx, req)
		return err
	case catalog.ActionReset:
		if err := r.blindBox.ResetCollection(ctx, msg.UserID, route.CollectionType); err != nil {
			return err
		}
		r.say(ctx, fmt.Sprintf(MsgCollectionReset, msg.DisplayName, route.CollectionType))
		return nil
	}
	return nil
}

// HandleRedemption applies a channel point reward. Rewards with no
// handler are ignored.
func (r *Router) HandleRedemption(ctx context.Context, red Redemption) error {
	ctx = event.WithSource(ctx, event.SourceTwitch)
	log := logger.FromContext(ctx)

	switch red.RewardTitle {
	case RewardDrinkPotion:
		res, err := r.stats.DrinkPotion(ctx, red.UserID, red.Username)
		if err != nil {
			return err
		}
		r.say(ctx, stats.FormatPotion(red.Username, res))
	case RewardTemptDice:
		r.say(ctx, stats.FormatTemptDice(red.Username))
	default:
		_, err := r.blindBox.RedeemByRewardTitle(ctx, red.UserID, red.Username, red.RewardTitle)
		if errors.Is(err, domain.ErrUnknownCollectionType) {
			log.Debug(LogMsgRedemptionIgnored, "reward", red.RewardTitle)
			return nil
		}
		if err != nil {
			return err
		}
	}

	log.Info(LogMsgRedemptionHandled, "reward", red.RewardTitle, "user", red.Username)
	return nil
}

func (r *Router) requireModerator(ctx context.Context, msg Message) bool {
	if msg.IsModerator {
		return true
	}
	logger.FromContext(ctx).Warn(LogMsgModeratorOnly, "user", msg.Login, "text", msg.Text)
	r.say(ctx, MsgModeratorOnly)
	return false
}

func (r *Router) say(ctx context.Context, text string) {
	if r.sayer == nil {
		logger.FromContext(ctx).Info(LogMsgReplyLoggedOnly, "channel", r.channel, "text", text)
		return
	}
	r.sayer.Say(r.channel, text)
}
