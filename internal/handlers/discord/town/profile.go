package town

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
)

// ProfileHandler shows a player's save
type ProfileHandler struct {
	services *services.Provider
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(serviceProvider *services.Provider) *ProfileHandler {
	return &ProfileHandler{services: serviceProvider}
}

// HandleProfile shows the caller's coins, inventory and lifetime stats
func (h *ProfileHandler) HandleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	p, err := h.services.PlayerRepository.GetOrCreate(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	inventory := "empty"
	if len(p.Inventory) > 0 {
		keys := make([]string, 0, len(p.Inventory))
		for key := range p.Inventory {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var parts []string
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s x%d", key, p.Inventory[key]))
		}
		inventory = strings.Join(parts, ", ")
	}

	embed := &discordgo.MessageEmbed{
		Title: p.DisplayName,
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Coins", Value: fmt.Sprintf("%d", p.Coins), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%d", p.XP), Inline: true},
			{Name: "Rod Tier", Value: fmt.Sprintf("%d", p.RodTier), Inline: true},
			{Name: "Inventory", Value: inventory},
			{Name: "Rooms Explored", Value: fmt.Sprintf("%d", p.Stats.RoomsExplored), Inline: true},
			{Name: "Bosses Defeated", Value: fmt.Sprintf("%d", p.Stats.BossesDefeated), Inline: true},
			{Name: "Fish Caught", Value: fmt.Sprintf("%d", p.Stats.FishCaught), Inline: true},
			{Name: "Wishes Made", Value: fmt.Sprintf("%d", p.Stats.WishesMade), Inline: true},
			{Name: "Knucklebones", Value: fmt.Sprintf("%d–%d", p.Stats.KnucklebonesWon, p.Stats.KnucklebonesLost), Inline: true},
		},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
