package run

import (
	"github.com/hollowmere/adventure-bot/internal/rng"
)

// Room is a concrete room built for the party to enter
type Room struct {
	Category    RoomCategory `json:"category"`
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Monsters    []string     `json:"monsters,omitempty"`
	Treasure    []string     `json:"treasure,omitempty"`
}

// BuildRoom maps a resolved category to a concrete room for the run's
// story and section. Combat and event rooms pick uniformly among the
// section's entries; on ocean runs the immediately-previous pick is
// excluded. The run itself is not mutated; callers record the pick on
// the anti-repeat markers after entry.
func BuildRoom(category RoomCategory, r *DungeonRun, src rng.Source) *Room {
	catalog := catalogFor(r.DungeonType)

	switch category {
	case RoomCategoryCombat:
		return pickContent(category, catalog.sections[r.Section].combat, previousFor(r, category), src)
	case RoomCategoryEvent:
		return pickContent(category, catalog.sections[r.Section].events, previousFor(r, category), src)
	case RoomCategoryTreasure:
		return pickContent(category, catalog.sections[r.Section].treasure, "", src)
	case RoomCategoryShopkeep:
		return contentToRoom(category, catalog.shopkeep)
	case RoomCategoryRest:
		return contentToRoom(category, catalog.rest)
	case RoomCategoryBoss:
		return contentToRoom(category, catalog.boss)
	default:
		return nil
	}
}

// previousFor returns the anti-repeat marker for the category. Only the
// ocean story tracks previous picks; the forest and underworld
// resolvers select without exclusion.
func previousFor(r *DungeonRun, category RoomCategory) string {
	if r.DungeonType != DungeonTypeOcean {
		return ""
	}
	switch category {
	case RoomCategoryCombat:
		return r.PreviousCombat
	case RoomCategoryEvent:
		return r.PreviousEvent
	default:
		return ""
	}
}

// pickContent selects uniformly among siblings, excluding the previous
// pick when there is anything else to choose from
func pickContent(category RoomCategory, entries []roomContent, exclude string, src rng.Source) *Room {
	if len(entries) == 0 {
		return nil
	}

	candidates := entries
	if exclude != "" && len(entries) > 1 {
		filtered := make([]roomContent, 0, len(entries)-1)
		for _, e := range entries {
			if e.key != exclude {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	return contentToRoom(category, candidates[src.Intn(len(candidates))])
}

func contentToRoom(category RoomCategory, c roomContent) *Room {
	return &Room{
		Category:    category,
		Key:         c.key,
		Name:        c.name,
		Description: c.description,
		Monsters:    c.monsters,
		Treasure:    c.treasure,
	}
}
