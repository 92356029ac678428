// Package town handles the interactions available between dungeon
// runs: fishing, the wishing well, knucklebones, mail and the market.
package town

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
)

// FishHandler runs the fishing commands
type FishHandler struct {
	services *services.Provider
}

// NewFishHandler creates a new fishing handler
func NewFishHandler(serviceProvider *services.Provider) *FishHandler {
	return &FishHandler{services: serviceProvider}
}

// HandleCast performs one cast
func (h *FishHandler) HandleCast(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	result, err := h.services.FishingService.Fish(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	c := result.Catch
	line := fmt.Sprintf("🎣 **%s** reeled in a **%s** (%s)", i.Member.User.Username, c.Name, c.Rarity)
	if c.Coins > 0 {
		line += fmt.Sprintf(" worth %d coins", c.Coins)
	}
	return helpers.RespondMessage(s, i, line)
}

// HandleUpgradeRod buys the next rod tier
func (h *FishHandler) HandleUpgradeRod(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	p, err := h.services.FishingService.UpgradeRod(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondMessage(s, i, fmt.Sprintf(
		"🎣 **%s** upgraded to a tier %d rod! (%d coins left)",
		i.Member.User.Username, p.RodTier, p.Coins))
}
