package run

// DungeonType selects which story's room catalogs and boss apply
type DungeonType string

const (
	DungeonTypeForest     DungeonType = "forest"
	DungeonTypeOcean      DungeonType = "ocean"
	DungeonTypeUnderworld DungeonType = "underworld"
)

// DisplayName returns the story name shown to players
func (d DungeonType) DisplayName() string {
	switch d {
	case DungeonTypeForest:
		return "Forest"
	case DungeonTypeOcean:
		return "Ocean"
	case DungeonTypeUnderworld:
		return "Underworld"
	default:
		return string(d)
	}
}

// Section is a named sub-area of a story with its own room content catalog
type Section string

const (
	// Forest sections
	SectionQuietGrove      Section = "quiet_grove"
	SectionScreamingCopse  Section = "screaming_copse"
	SectionWhisperingWoods Section = "whispering_woods"

	// Ocean sections
	SectionSunkenShallows Section = "sunken_shallows"
	SectionDrownedReef    Section = "drowned_reef"
	SectionMidnightTrench Section = "midnight_trench"

	// Underworld sections
	SectionAshenCrossing  Section = "ashen_crossing"
	SectionObsidianCourt  Section = "obsidian_court"
	SectionThroneOfEmbers Section = "throne_of_embers"
)

// Sections returns the story's sections in traversal order
func (d DungeonType) Sections() []Section {
	switch d {
	case DungeonTypeForest:
		return []Section{SectionQuietGrove, SectionScreamingCopse, SectionWhisperingWoods}
	case DungeonTypeOcean:
		return []Section{SectionSunkenShallows, SectionDrownedReef, SectionMidnightTrench}
	case DungeonTypeUnderworld:
		return []Section{SectionAshenCrossing, SectionObsidianCourt, SectionThroneOfEmbers}
	default:
		return nil
	}
}

// RoomCategory is the resolved type of an offered room
type RoomCategory string

const (
	RoomCategoryCombat   RoomCategory = "combat"
	RoomCategoryShopkeep RoomCategory = "shopkeep"
	RoomCategoryRest     RoomCategory = "rest"
	RoomCategoryTreasure RoomCategory = "treasure"
	RoomCategoryEvent    RoomCategory = "event"
	RoomCategoryBoss     RoomCategory = "boss"

	// roomCategoryMystery is an intermediate outer draw result, never
	// offered to players; it always resolves through the sub-resolver.
	roomCategoryMystery RoomCategory = "mystery"
)

// RunState represents where a run is in its decision loop
type RunState string

const (
	RunStateAwaitingSelection RunState = "awaiting_selection"
	RunStateRoomsOffered      RunState = "rooms_offered"
	RunStateBossForced        RunState = "boss_forced"
	RunStateRestForced        RunState = "rest_forced"
	RunStateInRoom            RunState = "in_room"
	RunStateComplete          RunState = "complete"
	RunStateFailed            RunState = "failed"
)
