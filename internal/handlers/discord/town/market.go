package town

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	marketService "github.com/hollowmere/adventure-bot/internal/services/market"
)

// MarketHandler runs the realm marketplace commands
type MarketHandler struct {
	services *services.Provider
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(serviceProvider *services.Provider) *MarketHandler {
	return &MarketHandler{services: serviceProvider}
}

// HandleList puts an item lot up for sale
func (h *MarketHandler) HandleList(s *discordgo.Session, i *discordgo.InteractionCreate, itemKey string, quantity, price int) error {
	listing, err := h.services.MarketService.ListItem(context.Background(), &marketService.ListItemInput{
		RealmID:  i.GuildID,
		SellerID: i.Member.User.ID,
		ItemKey:  itemKey,
		Quantity: quantity,
		Price:    price,
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondMessage(s, i, fmt.Sprintf(
		"🏷️ <@%s> listed **%s x%d** for **%d coins** (`%s`)",
		listing.SellerID, listing.ItemKey, listing.Quantity, listing.Price, listing.ID))
}

// HandleBrowse shows the realm's open listings
func (h *MarketHandler) HandleBrowse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	listings, err := h.services.MarketService.Browse(context.Background(), i.GuildID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	if len(listings) == 0 {
		return helpers.RespondEphemeral(s, i, "🏪 The market stalls are empty.")
	}

	var lines []string
	for _, l := range listings {
		lines = append(lines, fmt.Sprintf("`%s` — **%s x%d** for %d coins (seller <@%s>)",
			l.ID, l.ItemKey, l.Quantity, l.Price, l.SellerID))
	}

	return helpers.RespondEphemeral(s, i, "🏪 **Market**\n"+strings.Join(lines, "\n"))
}

// HandleBuy purchases a listing
func (h *MarketHandler) HandleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, listingID string) error {
	p, err := h.services.MarketService.Buy(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username, listingID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondMessage(s, i, fmt.Sprintf(
		"🤝 <@%s> bought a listing. (%d coins left)", i.Member.User.ID, p.Coins))
}

// HandleCancel withdraws one of the caller's listings
func (h *MarketHandler) HandleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, listingID string) error {
	if err := h.services.MarketService.Cancel(context.Background(), i.GuildID, i.Member.User.ID, listingID); err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondEphemeral(s, i, "🏷️ Listing withdrawn; the items are back in your bag.")
}
