package adventure

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	adventureService "github.com/hollowmere/adventure-bot/internal/services/adventure"
)

// RoomHandler drives a running party through its rooms
type RoomHandler struct {
	services *services.Provider
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(serviceProvider *services.Provider) *RoomHandler {
	return &RoomHandler{services: serviceProvider}
}

// HandleEnter opens one of the offered doors
func (h *RoomHandler) HandleEnter(s *discordgo.Session, i *discordgo.InteractionCreate, runID, choice string) error {
	idx, err := strconv.Atoi(choice)
	if err != nil {
		return helpers.RespondEphemeral(s, i, "❌ Unknown door.")
	}

	r, err := h.services.AdventureService.AdvanceRoom(context.Background(), &adventureService.AdvanceRoomInput{
		RunID:  runID,
		UserID: i.Member.User.ID,
		Choice: idx,
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{roomEmbed(r)},
			Components: roomComponents(r),
		},
	})
}

// HandleContinue resolves the current room and moves to the next
// decision point
func (h *RoomHandler) HandleContinue(s *discordgo.Session, i *discordgo.InteractionCreate, runID string) error {
	r, err := h.services.AdventureService.CompleteRoom(context.Background(), &adventureService.CompleteRoomInput{
		RunID:  runID,
		UserID: i.Member.User.ID,
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

// HandleBoss resolves the boss room one way or the other
func (h *RoomHandler) HandleBoss(s *discordgo.Session, i *discordgo.InteractionCreate, runID, outcome string) error {
	r, err := h.services.AdventureService.CompleteRoom(context.Background(), &adventureService.CompleteRoomInput{
		RunID:  runID,
		UserID: i.Member.User.ID,
		Outcome: adventureService.RoomOutcome{
			BossDefeated: outcome == "victory",
		},
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{summaryEmbed(r)},
			Components: []discordgo.MessageComponent{},
		},
	})
}

// HandleAbandonVote records one member's abandon vote
func (h *RoomHandler) HandleAbandonVote(s *discordgo.Session, i *discordgo.InteractionCreate, runID string) error {
	r, err := h.services.AdventureService.VoteAbandon(context.Background(), runID, i.Member.User.ID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	if r.State == run.RunStateFailed {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{summaryEmbed(r)},
				Components: []discordgo.MessageComponent{},
			},
		})
	}

	return helpers.RespondEphemeral(s, i, fmt.Sprintf(
		"🗳️ Vote recorded (%d/%d). The run ends when every member votes.",
		len(r.AbandonVotes), len(r.Party)))
}

// HandleStatus shows the channel's active run to the invoking user
func (h *RoomHandler) HandleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	r, err := h.services.AdventureService.GetRunByChannel(context.Background(), i.GuildID, i.ChannelID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	embed := decisionEmbed(r)
	if r.State == run.RunStateInRoom {
		embed = roomEmbed(r)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
