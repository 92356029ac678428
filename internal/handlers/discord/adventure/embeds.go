package adventure

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
)

const (
	colorNeutral = 0x5865F2
	colorDanger  = 0xED4245
	colorSuccess = 0x57F287
	colorFailure = 0x99AAB5
	colorGold    = 0xFEE75C
)

func categoryLabel(c run.RoomCategory) string {
	switch c {
	case run.RoomCategoryCombat:
		return "⚔️ Combat"
	case run.RoomCategoryShopkeep:
		return "🛒 Shopkeep"
	case run.RoomCategoryRest:
		return "🏕️ Rest"
	case run.RoomCategoryTreasure:
		return "💰 Treasure"
	case run.RoomCategoryEvent:
		return "🔮 Event"
	case run.RoomCategoryBoss:
		return "💀 Boss"
	default:
		return string(c)
	}
}

// decisionEmbed renders a decision point: the doors the party may open
func decisionEmbed(r *run.DungeonRun) *discordgo.MessageEmbed {
	var description string
	color := colorNeutral
	switch r.State {
	case run.RunStateBossForced:
		description = "The passage narrows. There is only one way left to go."
		color = colorDanger
	case run.RunStateRestForced:
		description = "The party is spent. A sheltered alcove is the only option."
	default:
		description = fmt.Sprintf("The corridor splits into %d doorways.", len(r.Offered))
	}

	doors := make([]string, 0, len(r.Offered))
	for idx, c := range r.Offered {
		doors = append(doors, fmt.Sprintf("%d. %s", idx+1, categoryLabel(c)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s — %s", r.DungeonType.DisplayName(), sectionLabel(r.Section)),
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Doors", Value: strings.Join(doors, "\n")},
			{Name: "Rooms Explored", Value: fmt.Sprintf("%d", r.Stats.RoomsExplored), Inline: true},
			{Name: "Party", Value: partyRoster(r.Party), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Only %s can open a door", r.Party.Leader().DisplayName),
		},
	}
	if r.Corruption > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Corruption", Value: fmt.Sprintf("%d", r.Corruption), Inline: true,
		})
	}
	return embed
}

// decisionComponents renders one button per offered door plus abandon
func decisionComponents(r *run.DungeonRun) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(r.Offered))
	for idx, c := range r.Offered {
		style := discordgo.PrimaryButton
		if c == run.RoomCategoryBoss {
			style = discordgo.DangerButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    categoryLabel(c),
			Style:    style,
			CustomID: fmt.Sprintf("adventure:enter:%s:%d", r.ID, idx),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
		abandonRow(r),
	}
}

// roomEmbed renders the room the party just entered
func roomEmbed(r *run.DungeonRun) *discordgo.MessageEmbed {
	room := r.CurrentRoom

	color := colorNeutral
	switch room.Category {
	case run.RoomCategoryCombat, run.RoomCategoryBoss:
		color = colorDanger
	case run.RoomCategoryTreasure:
		color = colorGold
	case run.RoomCategoryRest, run.RoomCategoryShopkeep:
		color = colorSuccess
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s — %s", categoryLabel(room.Category), room.Name),
		Description: room.Description,
		Color:       color,
	}
	if len(room.Monsters) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Foes", Value: strings.Join(room.Monsters, ", "),
		})
	}
	if len(room.Treasure) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Spoils", Value: strings.Join(room.Treasure, ", "),
		})
	}
	return embed
}

// roomComponents renders the in-room controls. Boss rooms resolve to
// victory or defeat; every other room just moves on.
func roomComponents(r *run.DungeonRun) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	if r.CurrentRoom.Category == run.RoomCategoryBoss {
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Strike the Killing Blow",
				Style:    discordgo.DangerButton,
				CustomID: "adventure:boss:" + r.ID + ":victory",
			},
			discordgo.Button{
				Label:    "The Party Falls",
				Style:    discordgo.SecondaryButton,
				CustomID: "adventure:boss:" + r.ID + ":defeat",
			},
		}
	} else {
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Press On",
				Style:    discordgo.PrimaryButton,
				CustomID: "adventure:continue:" + r.ID,
			},
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
		abandonRow(r),
	}
}

// summaryEmbed renders the end-of-run card
func summaryEmbed(r *run.DungeonRun) *discordgo.MessageEmbed {
	title := "The Party Was Defeated"
	description := fmt.Sprintf("The %s claimed another party.", strings.ToLower(r.DungeonType.DisplayName()))
	color := colorFailure
	if r.State == run.RunStateComplete {
		title = "Victory!"
		description = fmt.Sprintf("The %s boss has fallen. Each adventurer earns 250 coins and 100 XP.", strings.ToLower(r.DungeonType.DisplayName()))
		color = colorSuccess
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Rooms Explored", Value: fmt.Sprintf("%d", r.Stats.RoomsExplored), Inline: true},
			{Name: "Combats", Value: fmt.Sprintf("%d", r.Stats.CombatEncounters), Inline: true},
			{Name: "Treasures", Value: fmt.Sprintf("%d", r.Stats.TreasureRoomsEncountered), Inline: true},
			{Name: "Events", Value: fmt.Sprintf("%d", r.Stats.EventsEncountered), Inline: true},
			{Name: "Rests", Value: fmt.Sprintf("%d", r.Stats.RestsTaken), Inline: true},
			{Name: "Party", Value: partyRoster(r.Party), Inline: true},
		},
	}
}

func abandonRow(r *run.DungeonRun) discordgo.MessageComponent {
	label := "Vote to Abandon"
	if len(r.AbandonVotes) > 0 {
		label = fmt.Sprintf("Vote to Abandon (%d/%d)", len(r.AbandonVotes), len(r.Party))
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    label,
				Style:    discordgo.SecondaryButton,
				CustomID: "adventure:abandon:" + r.ID,
			},
		},
	}
}

func partyRoster(p run.Party) string {
	names := make([]string, 0, len(p))
	for _, m := range p {
		names = append(names, m.DisplayName)
	}
	return strings.Join(names, ", ")
}

var sectionTitler = cases.Title(language.English)

func sectionLabel(s run.Section) string {
	return sectionTitler.String(strings.ReplaceAll(string(s), "_", " "))
}
