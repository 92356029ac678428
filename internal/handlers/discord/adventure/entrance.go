package adventure

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	adventureService "github.com/hollowmere/adventure-bot/internal/services/adventure"
	"github.com/hollowmere/adventure-bot/internal/uuid"
)

// entranceTimeout is how long a party has to assemble before the
// entrance closes on its own.
const entranceTimeout = 5 * time.Minute

// entrance is a party assembling at a story gate. It exists only until
// the leader embarks, cancels, or the timeout fires.
type entrance struct {
	ID          string
	RealmID     string
	ChannelID   string
	DungeonType run.DungeonType
	Members     []run.PartyMember
	MessageID   string

	timer  *time.Timer
	closed bool
}

func (e *entrance) contains(userID string) bool {
	for _, m := range e.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// EntranceHandler runs the party-assembly flow in front of a dungeon
type EntranceHandler struct {
	services  *services.Provider
	uuidGen   uuid.Generator
	mu        sync.Mutex
	entrances map[string]*entrance
}

// NewEntranceHandler creates a new entrance handler
func NewEntranceHandler(serviceProvider *services.Provider) *EntranceHandler {
	return &EntranceHandler{
		services:  serviceProvider,
		uuidGen:   uuid.NewGenerator(),
		entrances: make(map[string]*entrance),
	}
}

// HandleStart opens an entrance and posts the assembly message
func (h *EntranceHandler) HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate, dungeonType string) error {
	dt := run.DungeonType(dungeonType)
	switch dt {
	case run.DungeonTypeForest, run.DungeonTypeOcean, run.DungeonTypeUnderworld:
	default:
		return helpers.RespondEphemeral(s, i, "❌ Unknown story: "+dungeonType)
	}

	leader := run.PartyMember{
		UserID:      i.Member.User.ID,
		DisplayName: i.Member.User.Username,
	}

	e := &entrance{
		ID:          h.uuidGen.New(),
		RealmID:     i.GuildID,
		ChannelID:   i.ChannelID,
		DungeonType: dt,
		Members:     []run.PartyMember{leader},
	}

	err := helpers.RespondEmbed(s, i, h.entranceEmbed(e), h.entranceComponents(e))
	if err != nil {
		return err
	}

	// Remember the posted message so the timeout can close it visibly.
	if msg, msgErr := s.InteractionResponse(i.Interaction); msgErr == nil {
		e.MessageID = msg.ID
	}

	h.mu.Lock()
	e.timer = time.AfterFunc(entranceTimeout, func() { h.expire(s, e.ID) })
	h.entrances[e.ID] = e
	h.mu.Unlock()

	return nil
}

// HandleJoin adds the pressing user to the assembling party
func (h *EntranceHandler) HandleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, entranceID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entrances[entranceID]
	if !ok || e.closed {
		return helpers.RespondEphemeral(s, i, "❌ This entrance has closed.")
	}

	userID := i.Member.User.ID
	if e.contains(userID) {
		return helpers.RespondEphemeral(s, i, "❌ You are already in the party.")
	}

	e.Members = append(e.Members, run.PartyMember{
		UserID:      userID,
		DisplayName: i.Member.User.Username,
	})

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{h.entranceEmbed(e)},
			Components: h.entranceComponents(e),
		},
	})
}

// HandleEmbark starts the run. Only the leader can embark.
func (h *EntranceHandler) HandleEmbark(s *discordgo.Session, i *discordgo.InteractionCreate, entranceID string) error {
	h.mu.Lock()
	e, ok := h.entrances[entranceID]
	if !ok || e.closed {
		h.mu.Unlock()
		return helpers.RespondEphemeral(s, i, "❌ This entrance has closed.")
	}
	if e.Members[0].UserID != i.Member.User.ID {
		h.mu.Unlock()
		return helpers.RespondEphemeral(s, i, "❌ Only the party leader can embark.")
	}
	e.closed = true
	e.timer.Stop()
	delete(h.entrances, entranceID)
	h.mu.Unlock()

	// Every member gets a save before the run gates on their flags.
	for _, m := range e.Members {
		if _, err := h.services.PlayerRepository.GetOrCreate(context.Background(), e.RealmID, m.UserID, m.DisplayName); err != nil {
			return helpers.RespondError(s, i, err)
		}
	}

	r, err := h.services.AdventureService.StartRun(context.Background(), &adventureService.StartRunInput{
		RealmID:     e.RealmID,
		ChannelID:   e.ChannelID,
		DungeonType: e.DungeonType,
		Members:     e.Members,
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{decisionEmbed(r)},
			Components: decisionComponents(r),
		},
	})
}

// HandleCancel tears the entrance down. Only the leader can cancel.
func (h *EntranceHandler) HandleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, entranceID string) error {
	h.mu.Lock()
	e, ok := h.entrances[entranceID]
	if !ok || e.closed {
		h.mu.Unlock()
		return helpers.RespondEphemeral(s, i, "❌ This entrance has closed.")
	}
	if e.Members[0].UserID != i.Member.User.ID {
		h.mu.Unlock()
		return helpers.RespondEphemeral(s, i, "❌ Only the party leader can cancel.")
	}
	e.closed = true
	e.timer.Stop()
	delete(h.entrances, entranceID)
	h.mu.Unlock()

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       e.DungeonType.DisplayName() + " Entrance",
				Description: "The party disbanded before setting out.",
				Color:       colorFailure,
			}},
			Components: []discordgo.MessageComponent{},
		},
	})
}

// expire closes an idle entrance and strips its buttons
func (h *EntranceHandler) expire(s *discordgo.Session, entranceID string) {
	h.mu.Lock()
	e, ok := h.entrances[entranceID]
	if !ok || e.closed {
		h.mu.Unlock()
		return
	}
	e.closed = true
	delete(h.entrances, entranceID)
	h.mu.Unlock()

	if e.MessageID == "" {
		return
	}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      e.MessageID,
		Channel: e.ChannelID,
		Embeds: &[]*discordgo.MessageEmbed{{
			Title:       e.DungeonType.DisplayName() + " Entrance",
			Description: "The entrance closed after the party never set out.",
			Color:       colorFailure,
		}},
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		log.Printf("failed to close entrance %s: %v", entranceID, err)
	}
}

func (h *EntranceHandler) entranceEmbed(e *entrance) *discordgo.MessageEmbed {
	roster := ""
	for idx, m := range e.Members {
		if idx == 0 {
			roster += fmt.Sprintf("👑 %s\n", m.DisplayName)
		} else {
			roster += fmt.Sprintf("• %s\n", m.DisplayName)
		}
	}

	return &discordgo.MessageEmbed{
		Title:       e.DungeonType.DisplayName() + " Entrance",
		Description: "A party is assembling. Join before the leader embarks!",
		Color:       colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Party", Value: roster},
		},
	}
}

func (h *EntranceHandler) entranceComponents(e *entrance) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join Party",
					Style:    discordgo.PrimaryButton,
					CustomID: "adventure:join:" + e.ID,
				},
				discordgo.Button{
					Label:    "Embark",
					Style:    discordgo.SuccessButton,
					CustomID: "adventure:embark:" + e.ID,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: "adventure:cancel:" + e.ID,
				},
			},
		},
	}
}
