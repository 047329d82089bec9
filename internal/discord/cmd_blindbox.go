package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// CompletedCommand lists the users owning every slot of each collection
func CompletedCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCompleted,
		Description: "See who has completed a blind box collection",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc Services) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			completed, err := svc.BlindBox.CompletedCollections(ctx)
			if err != nil {
				return nil, err
			}
			return completedEmbed(completed, svc.BlindBox.Catalogs()), nil
		})
	}

	return cmd, handler
}

// CollectionsCommand lists each collection with its slot odds
func CollectionsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCollections,
		Description: "List the blind box collections and their odds",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc Services) {
		handleEmbedResponse(s, i, func(context.Context) (*discordgo.MessageEmbed, error) {
			return collectionsEmbed(svc.BlindBox.Catalogs()), nil
		})
	}

	return cmd, handler
}

func completedEmbed(completed []domain.CompletedCollection, catalogs []domain.CollectionCatalog) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: TitleCompleted,
		Color: ColorGold,
	}
	if len(completed) == 0 {
		embed.Description = MsgNoCompleted
		return embed
	}

	titles := make(map[string]string, len(catalogs))
	for _, c := range catalogs {
		titles[c.CollectionType] = c.DisplayTitle
	}

	for _, c := range completed {
		name := titles[c.CollectionType]
		if name == "" {
			name = c.CollectionType
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: strings.Join(c.Usernames, SlotNameSeparator),
		})
	}
	return embed
}

func collectionsEmbed(catalogs []domain.CollectionCatalog) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: TitleCollections,
		Color: ColorBlue,
	}

	for _, c := range catalogs {
		total := 0
		for _, slot := range c.Slots {
			total += slot.Weight
		}

		slots := make([]string, 0, len(c.Slots))
		for _, slot := range c.Slots {
			odds := 0.0
			if total > 0 {
				odds = float64(slot.Weight) * 100 / float64(total)
			}
			slots = append(slots, fmt.Sprintf(SlotOddsFormat, slot.Name, odds))
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (!%s)", c.DisplayTitle, c.DisplayCommand),
			Value: strings.Join(slots, SlotNameSeparator),
		})
	}
	return embed
}
