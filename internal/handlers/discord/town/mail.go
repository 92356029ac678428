package town

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	mailService "github.com/hollowmere/adventure-bot/internal/services/mail"
)

// MailHandler runs the gift mail commands
type MailHandler struct {
	services *services.Provider
}

// NewMailHandler creates a new mail handler
func NewMailHandler(serviceProvider *services.Provider) *MailHandler {
	return &MailHandler{services: serviceProvider}
}

// SendInput carries the parsed /mail send options
type SendInput struct {
	ToUserID string
	Coins    int
	ItemKey  string
	Count    int
	Note     string
}

// HandleSend mails a gift to another player
func (h *MailHandler) HandleSend(s *discordgo.Session, i *discordgo.InteractionCreate, input *SendInput) error {
	items := map[string]int{}
	if input.ItemKey != "" {
		count := input.Count
		if count <= 0 {
			count = 1
		}
		items[input.ItemKey] = count
	}

	msg, err := h.services.MailService.SendGift(context.Background(), &mailService.SendGiftInput{
		RealmID:    i.GuildID,
		FromUserID: i.Member.User.ID,
		FromName:   i.Member.User.Username,
		ToUserID:   input.ToUserID,
		Note:       input.Note,
		Coins:      input.Coins,
		Items:      items,
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondMessage(s, i, fmt.Sprintf(
		"📬 <@%s> sent a gift to <@%s>!", msg.FromUserID, msg.ToUserID))
}

// HandleInbox lists the caller's unclaimed mail
func (h *MailHandler) HandleInbox(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	messages, err := h.services.MailService.ListMail(context.Background(), i.GuildID, i.Member.User.ID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	if len(messages) == 0 {
		return helpers.RespondEphemeral(s, i, "📭 Your mailbox is empty.")
	}

	var lines []string
	for _, m := range messages {
		line := fmt.Sprintf("`%s` from <@%s>", m.ID, m.FromUserID)
		var parts []string
		if m.Coins > 0 {
			parts = append(parts, fmt.Sprintf("%d coins", m.Coins))
		}
		for key, count := range m.Items {
			parts = append(parts, fmt.Sprintf("%s x%d", key, count))
		}
		if len(parts) > 0 {
			line += " — " + strings.Join(parts, ", ")
		}
		if m.Note != "" {
			line += fmt.Sprintf("\n> %s", m.Note)
		}
		lines = append(lines, line)
	}

	return helpers.RespondEphemeral(s, i, "📬 **Your mail**\n"+strings.Join(lines, "\n"))
}

// HandleClaim claims one message's contents
func (h *MailHandler) HandleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, messageID string) error {
	p, err := h.services.MailService.Claim(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username, messageID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return helpers.RespondEphemeral(s, i, fmt.Sprintf(
		"🎁 Claimed! You now have %d coins.", p.Coins))
}
