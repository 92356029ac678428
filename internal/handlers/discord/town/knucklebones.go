package town

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	kb "github.com/hollowmere/adventure-bot/internal/domain/game/knucklebones"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord/helpers"
	"github.com/hollowmere/adventure-bot/internal/services"
	knucklebonesService "github.com/hollowmere/adventure-bot/internal/services/knucklebones"
)

var dieFaces = [...]string{"", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// KnucklebonesHandler runs knucklebones matches over buttons
type KnucklebonesHandler struct {
	services *services.Provider
}

// NewKnucklebonesHandler creates a new knucklebones handler
func NewKnucklebonesHandler(serviceProvider *services.Provider) *KnucklebonesHandler {
	return &KnucklebonesHandler{services: serviceProvider}
}

// HandleChallenge posts a match invitation
func (h *KnucklebonesHandler) HandleChallenge(s *discordgo.Session, i *discordgo.InteractionCreate, opponentID string, wager int) error {
	// The challenger needs a save before the service checks their purse.
	if _, err := h.services.PlayerRepository.GetOrCreate(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username); err != nil {
		return helpers.RespondError(s, i, err)
	}

	game, err := h.services.KnucklebonesService.Challenge(context.Background(), &knucklebonesService.ChallengeInput{
		RealmID:      i.GuildID,
		ChallengerID: i.Member.User.ID,
		OpponentID:   opponentID,
		Wager:        wager,
	})
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	content := fmt.Sprintf("🎲 <@%s> challenges <@%s> to knucklebones", game.Players[0], game.Players[1])
	if wager > 0 {
		content += fmt.Sprintf(" for **%d coins**", wager)
	}
	content += "!"

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept",
							Style:    discordgo.SuccessButton,
							CustomID: "kb:accept:" + game.ID,
						},
						discordgo.Button{
							Label:    "Decline",
							Style:    discordgo.DangerButton,
							CustomID: "kb:decline:" + game.ID,
						},
					},
				},
			},
		},
	})
}

// HandleAccept starts the match
func (h *KnucklebonesHandler) HandleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) error {
	// The opponent may be playing for the first time.
	if _, err := h.services.PlayerRepository.GetOrCreate(context.Background(), i.GuildID, i.Member.User.ID, i.Member.User.Username); err != nil {
		return helpers.RespondError(s, i, err)
	}

	game, err := h.services.KnucklebonesService.Accept(context.Background(), gameID, i.Member.User.ID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return h.updateMatch(s, i, game)
}

// HandleDecline rejects the invitation
func (h *KnucklebonesHandler) HandleDecline(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) error {
	game, err := h.services.KnucklebonesService.Decline(context.Background(), gameID, i.Member.User.ID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("🎲 <@%s> declined the challenge.", game.Players[1]),
			Components: []discordgo.MessageComponent{},
		},
	})
}

// HandleRoll rolls the current player's die
func (h *KnucklebonesHandler) HandleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) error {
	game, err := h.services.KnucklebonesService.Roll(context.Background(), gameID, i.Member.User.ID)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return h.updateMatch(s, i, game)
}

// HandlePlace places the pending die in a column
func (h *KnucklebonesHandler) HandlePlace(s *discordgo.Session, i *discordgo.InteractionCreate, gameID, column string) error {
	col, err := strconv.Atoi(column)
	if err != nil {
		return helpers.RespondEphemeral(s, i, "❌ Unknown column.")
	}

	game, err := h.services.KnucklebonesService.Place(context.Background(), gameID, i.Member.User.ID, col)
	if err != nil {
		return helpers.RespondError(s, i, err)
	}

	return h.updateMatch(s, i, game)
}

// updateMatch redraws the shared match message
func (h *KnucklebonesHandler) updateMatch(s *discordgo.Session, i *discordgo.InteractionCreate, game *kb.Game) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "",
			Embeds:     []*discordgo.MessageEmbed{matchEmbed(game)},
			Components: matchComponents(game),
		},
	})
}

func matchEmbed(game *kb.Game) *discordgo.MessageEmbed {
	scoreA, scoreB := game.Scores()

	embed := &discordgo.MessageEmbed{
		Title: "Knucklebones",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("Player 1 — %d pts", scoreA),
				Value: fmt.Sprintf("<@%s>\n%s", game.Players[0], renderBoard(&game.Boards[0])),
			},
			{
				Name:  fmt.Sprintf("Player 2 — %d pts", scoreB),
				Value: fmt.Sprintf("<@%s>\n%s", game.Players[1], renderBoard(&game.Boards[1])),
			},
		},
	}

	switch {
	case game.State == kb.GameStateComplete && game.Winner == "":
		embed.Description = "A draw. The wager stays where it is."
	case game.State == kb.GameStateComplete:
		embed.Description = fmt.Sprintf("🏆 <@%s> wins!", game.Winner)
		if game.Wager > 0 {
			embed.Description += fmt.Sprintf(" %d coins change hands.", game.Wager)
		}
	case game.PendingDie != 0:
		embed.Description = fmt.Sprintf("<@%s> rolled %s — pick a column.",
			game.Players[game.Turn], dieFaces[game.PendingDie])
	default:
		embed.Description = fmt.Sprintf("<@%s>'s turn — roll the die.", game.Players[game.Turn])
	}

	return embed
}

func matchComponents(game *kb.Game) []discordgo.MessageComponent {
	if game.State != kb.GameStateInProgress {
		return []discordgo.MessageComponent{}
	}

	if game.PendingDie == 0 {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Roll",
						Style:    discordgo.PrimaryButton,
						CustomID: "kb:roll:" + game.ID,
					},
				},
			},
		}
	}

	buttons := make([]discordgo.MessageComponent, 0, kb.BoardColumns)
	for col := 0; col < kb.BoardColumns; col++ {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("Column %d", col+1),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("kb:place:%s:%d", game.ID, col),
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// renderBoard draws the columns top-down so the board reads like a
// physical table
func renderBoard(b *kb.Board) string {
	var rows []string
	for depth := kb.ColumnDepth - 1; depth >= 0; depth-- {
		cells := make([]string, kb.BoardColumns)
		for col := 0; col < kb.BoardColumns; col++ {
			if depth < len(b.Columns[col]) {
				cells[col] = dieFaces[b.Columns[col][depth]]
			} else {
				cells[col] = "·"
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return "```\n" + strings.Join(rows, "\n") + "\n```"
}
