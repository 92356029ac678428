package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	adventureHandler "github.com/hollowmere/adventure-bot/internal/handlers/discord/adventure"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord/town"
	"github.com/hollowmere/adventure-bot/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	entranceHandler     *adventureHandler.EntranceHandler
	roomHandler         *adventureHandler.RoomHandler
	fishHandler         *town.FishHandler
	wellHandler         *town.WellHandler
	knucklebonesHandler *town.KnucklebonesHandler
	mailHandler         *town.MailHandler
	marketHandler       *town.MarketHandler
	profileHandler      *town.ProfileHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider:     cfg.ServiceProvider,
		entranceHandler:     adventureHandler.NewEntranceHandler(cfg.ServiceProvider),
		roomHandler:         adventureHandler.NewRoomHandler(cfg.ServiceProvider),
		fishHandler:         town.NewFishHandler(cfg.ServiceProvider),
		wellHandler:         town.NewWellHandler(cfg.ServiceProvider),
		knucklebonesHandler: town.NewKnucklebonesHandler(cfg.ServiceProvider),
		mailHandler:         town.NewMailHandler(cfg.ServiceProvider),
		marketHandler:       town.NewMarketHandler(cfg.ServiceProvider),
		profileHandler:      town.NewProfileHandler(cfg.ServiceProvider),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "adventure",
			Description: "Dungeon run commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "start",
					Description: "Open an entrance and assemble a party",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "story",
							Description: "Which story to run",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Forest", Value: "forest"},
								{Name: "Ocean", Value: "ocean"},
								{Name: "Underworld", Value: "underworld"},
							},
						},
					},
				},
				{
					Name:        "status",
					Description: "Show this channel's active run",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
		{
			Name:        "fish",
			Description: "Fishing commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "cast",
					Description: "Cast your line",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "rod",
					Description: "Upgrade your rod",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
		{
			Name:        "well",
			Description: "Toss a coin into the wishing well",
		},
		{
			Name:        "knucklebones",
			Description: "Challenge another player to knucklebones",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "opponent",
					Description: "Who to challenge",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "wager",
					Description: "Coins on the line (optional)",
					Required:    false,
				},
			},
		},
		{
			Name:        "mail",
			Description: "Gift mail commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "send",
					Description: "Mail coins or items to another player",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "to",
							Description: "Recipient",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "coins",
							Description: "Coins to send",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item key to send",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many of the item",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "note",
							Description: "A note for the recipient",
							Required:    false,
						},
					},
				},
				{
					Name:        "inbox",
					Description: "List your unclaimed mail",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "claim",
					Description: "Claim a piece of mail",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Mail ID from your inbox",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "market",
			Description: "Realm marketplace commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "list",
					Description: "Put an item up for sale",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item key to sell",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "price",
							Description: "Asking price in coins",
							Required:    true,
						},
					},
				},
				{
					Name:        "browse",
					Description: "Browse the realm's listings",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "buy",
					Description: "Buy a listing",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Listing ID from /market browse",
							Required:    true,
						},
					},
				},
				{
					Name:        "cancel",
					Description: "Withdraw one of your listings",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Listing ID",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "profile",
			Description: "Show your adventurer profile",
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

// HandleInteraction routes an interaction to its handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var err error
	switch data.Name {
	case "adventure":
		switch data.Options[0].Name {
		case "start":
			err = h.entranceHandler.HandleStart(s, i, data.Options[0].Options[0].StringValue())
		case "status":
			err = h.roomHandler.HandleStatus(s, i)
		}
	case "fish":
		switch data.Options[0].Name {
		case "cast":
			err = h.fishHandler.HandleCast(s, i)
		case "rod":
			err = h.fishHandler.HandleUpgradeRod(s, i)
		}
	case "well":
		err = h.wellHandler.HandleWish(s, i)
	case "knucklebones":
		opponent := ""
		wager := 0
		for _, opt := range data.Options {
			switch opt.Name {
			case "opponent":
				opponent = opt.UserValue(nil).ID
			case "wager":
				wager = int(opt.IntValue())
			}
		}
		err = h.knucklebonesHandler.HandleChallenge(s, i, opponent, wager)
	case "mail":
		err = h.handleMailCommand(s, i, data.Options[0])
	case "market":
		err = h.handleMarketCommand(s, i, data.Options[0])
	case "profile":
		err = h.profileHandler.HandleProfile(s, i)
	default:
		err = helpers.RespondEphemeral(s, i, "❌ Unknown command.")
	}

	if err != nil {
		log.Printf("error handling command %s: %v", data.Name, err)
	}
}

func (h *Handler) handleMailCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	switch sub.Name {
	case "send":
		input := &town.SendInput{}
		for _, opt := range sub.Options {
			switch opt.Name {
			case "to":
				input.ToUserID = opt.UserValue(nil).ID
			case "coins":
				input.Coins = int(opt.IntValue())
			case "item":
				input.ItemKey = opt.StringValue()
			case "count":
				input.Count = int(opt.IntValue())
			case "note":
				input.Note = opt.StringValue()
			}
		}
		return h.mailHandler.HandleSend(s, i, input)
	case "inbox":
		return h.mailHandler.HandleInbox(s, i)
	case "claim":
		return h.mailHandler.HandleClaim(s, i, sub.Options[0].StringValue())
	default:
		return helpers.RespondEphemeral(s, i, "❌ Unknown mail command.")
	}
}

func (h *Handler) handleMarketCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	switch sub.Name {
	case "list":
		var itemKey string
		var count, price int
		for _, opt := range sub.Options {
			switch opt.Name {
			case "item":
				itemKey = opt.StringValue()
			case "count":
				count = int(opt.IntValue())
			case "price":
				price = int(opt.IntValue())
			}
		}
		return h.marketHandler.HandleList(s, i, itemKey, count, price)
	case "browse":
		return h.marketHandler.HandleBrowse(s, i)
	case "buy":
		return h.marketHandler.HandleBuy(s, i, sub.Options[0].StringValue())
	case "cancel":
		return h.marketHandler.HandleCancel(s, i, sub.Options[0].StringValue())
	default:
		return helpers.RespondEphemeral(s, i, "❌ Unknown market command.")
	}
}

// handleComponent routes button presses by their custom ID, formatted
// as "feature:action:id[:arg]"
func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, ":")
	if len(parts) < 3 {
		log.Printf("unparseable custom ID: %s", customID)
		return
	}

	var err error
	switch parts[0] {
	case "adventure":
		err = h.handleAdventureComponent(s, i, parts)
	case "kb":
		err = h.handleKnucklebonesComponent(s, i, parts)
	default:
		err = helpers.RespondEphemeral(s, i, "❌ Unknown button.")
	}

	if err != nil {
		log.Printf("error handling component %s: %v", customID, err)
	}
}

func (h *Handler) handleAdventureComponent(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) error {
	action, id := parts[1], parts[2]
	switch action {
	case "join":
		return h.entranceHandler.HandleJoin(s, i, id)
	case "embark":
		return h.entranceHandler.HandleEmbark(s, i, id)
	case "cancel":
		return h.entranceHandler.HandleCancel(s, i, id)
	case "enter":
		if len(parts) < 4 {
			return helpers.RespondEphemeral(s, i, "❌ Unknown door.")
		}
		return h.roomHandler.HandleEnter(s, i, id, parts[3])
	case "continue":
		return h.roomHandler.HandleContinue(s, i, id)
	case "boss":
		if len(parts) < 4 {
			return helpers.RespondEphemeral(s, i, "❌ Unknown outcome.")
		}
		return h.roomHandler.HandleBoss(s, i, id, parts[3])
	case "abandon":
		return h.roomHandler.HandleAbandonVote(s, i, id)
	default:
		return helpers.RespondEphemeral(s, i, "❌ Unknown button.")
	}
}

func (h *Handler) handleKnucklebonesComponent(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) error {
	action, id := parts[1], parts[2]
	switch action {
	case "accept":
		return h.knucklebonesHandler.HandleAccept(s, i, id)
	case "decline":
		return h.knucklebonesHandler.HandleDecline(s, i, id)
	case "roll":
		return h.knucklebonesHandler.HandleRoll(s, i, id)
	case "place":
		if len(parts) < 4 {
			return helpers.RespondEphemeral(s, i, "❌ Unknown column.")
		}
		return h.knucklebonesHandler.HandlePlace(s, i, id, parts[3])
	default:
		return helpers.RespondEphemeral(s, i, "❌ Unknown button.")
	}
}
