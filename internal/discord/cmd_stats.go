package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// LeaderboardCommand shows the top user of each stat
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLeaderboard,
		Description: "View the top chatter for each stat",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc Services) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			leaders, err := svc.Stats.Leaderboard(ctx)
			if err != nil {
				return nil, err
			}
			return leaderboardEmbed(leaders), nil
		})
	}

	return cmd, handler
}

func leaderboardEmbed(leaders []domain.StatLeader) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: TitleLeaderboard,
		Color: ColorTeal,
	}
	if len(leaders) == 0 {
		embed.Description = MsgNoLeaders
		return embed
	}

	for _, l := range leaders {
		info, ok := domain.LookupStat(string(l.Column))
		if !ok {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", info.Emoji, info.Display),
			Value:  fmt.Sprintf("%s (%d)", l.Username, l.Value),
			Inline: true,
		})
	}
	return embed
}
