package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// FormatStats renders a user's stats as a single chat line
func FormatStats(username string, s *domain.UserStats) string {
	parts := make([]string, 0, len(domain.StatList))
	for _, info := range domain.StatList {
		parts = append(parts, fmt.Sprintf("%s: %d", info.Abbrev, s.Value(info.Column)))
	}
	return fmt.Sprintf(FormatStatsMessage, username, strings.Join(parts, StatSeparator))
}

// FormatPotion renders the potion flavour text
func FormatPotion(username string, r *PotionResult) string {
	outcome := PotionOutcomeGained
	if r.Delta < 0 {
		outcome = PotionOutcomeLost
	}
	return fmt.Sprintf(FormatPotionMessage, username, outcome, r.Stat.Display)
}

// FormatTemptDice renders the dice flavour text
func FormatTemptDice(username string) string {
	return fmt.Sprintf(FormatTemptDiceMessage, username)
}

// FormatLeaderboard renders the top user of each stat
func FormatLeaderboard(leaders []domain.StatLeader) string {
	parts := make([]string, 0, len(leaders))
	for _, l := range leaders {
		info, _ := domain.LookupStat(string(l.Column))
		parts = append(parts, fmt.Sprintf("%s %s(%d)", info.Emoji, l.Username, l.Value))
	}
	return LeaderboardPrefix + strings.Join(parts, StatSeparator)
}

// CommandError is a parse failure whose message is safe to echo in chat
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string { return e.Message }

// Unwrap lets callers match parse failures with errors.Is(err, domain.ErrInvalidInput)
func (e *CommandError) Unwrap() error { return domain.ErrInvalidInput }

// ModifyStatCommand is a parsed !addstat or !rmstat message
type ModifyStatCommand struct {
	Login  string // lowercased, without "@"
	Column domain.StatColumn
	Amount int
	Remove bool
}

// Delta returns the signed change to apply
func (c *ModifyStatCommand) Delta() int {
	if c.Remove {
		return -c.Amount
	}
	return c.Amount
}

// ParseModifyStatCommand parses "!addstat @user stat amount" (or !rmstat when remove is set)
func ParseModifyStatCommand(text string, remove bool) (*ModifyStatCommand, error) {
	parts := strings.Fields(text)
	if len(parts) < 4 {
		return nil, &CommandError{Message: ErrMsgModifyStatFormat}
	}

	var mention string
	for _, p := range parts {
		if strings.HasPrefix(p, "@") {
			mention = p
			break
		}
	}
	if mention == "" {
		return nil, &CommandError{Message: ErrMsgNoMention}
	}

	amount, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, &CommandError{Message: ErrMsgInvalidNumber}
	}

	return &ModifyStatCommand{
		Login:  strings.ToLower(strings.TrimPrefix(mention, "@")),
		Column: domain.StatColumn(strings.ToLower(parts[2])),
		Amount: amount,
		Remove: remove,
	}, nil
}
