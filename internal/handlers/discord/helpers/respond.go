// Package helpers contains small response utilities shared by the
// Discord interaction handlers.
package helpers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

// RespondMessage sends a plain channel message response
func RespondMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// RespondEphemeral sends a message only the invoking user can see
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondEmbed sends an embed with optional component rows
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// RespondError translates a service error into a user-facing reply.
// Expected rejections carry their message through as an ephemeral
// notice; anything else gets a generic failure so internals never leak
// into the channel.
func RespondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidArgument,
		apperrors.CodeNotFound,
		apperrors.CodeAlreadyExists,
		apperrors.CodePermissionDenied,
		apperrors.CodeFailedPrecondition:
		return RespondEphemeral(s, i, "❌ "+err.Error())
	default:
		log.Printf("interaction failed: %v", err)
		return RespondEphemeral(s, i, "❌ Something went wrong. Please try again.")
	}
}
