package town

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	wellService "github.com/hollowmere/adventure-bot/internal/services/well"
)

// WellHandler runs the wishing-well command
type WellHandler struct {
	services *services.Provider
}

// NewWellHandler creates a new wishing-well handler
func NewWellHandler(serviceProvider *services.Provider) *WellHandler {
	return &WellHandler{services: serviceProvider}
}

// HandleWish tosses a coin into the well
func (h *WellHandler) HandleWish(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	result, err := h.services.WellService.Wish(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	r := result.Reward
	line := fmt.Sprintf("🪙 **%s** tossed %d coins into the well and received **%s** (%s)!",
		i.Member.User.Username, wellService.WishCost, r.Name, r.Rarity)
	if r.Rarity == "rare" {
		line = "✨ " + line
	}
	return helpers.RespondMessage(s, i, line)
}
