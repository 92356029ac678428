package run

import (
	"time"
)

// PartyMember represents a player on a run
type PartyMember struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Party is the ordered list of participating users. The first entry is
// the group leader for the lifetime of the run; membership never changes
// after the run starts.
type Party []PartyMember

// Leader returns the group leader
func (p Party) Leader() PartyMember {
	return p[0]
}

// IsLeader reports whether the user is the group leader
func (p Party) IsLeader(userID string) bool {
	return len(p) > 0 && p[0].UserID == userID
}

// Contains reports whether the user is a party member
func (p Party) Contains(userID string) bool {
	for _, m := range p {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// UserIDs returns the member user IDs in party order
func (p Party) UserIDs() []string {
	ids := make([]string, len(p))
	for i, m := range p {
		ids[i] = m.UserID
	}
	return ids
}

// Stats are write-only accumulators consumed at run end to update each
// party member's lifetime statistics
type Stats struct {
	RoomsExplored            int `json:"rooms_explored"`
	CombatEncounters         int `json:"combat_encounters"`
	TreasureRoomsEncountered int `json:"treasure_rooms_encountered"`
	ShopkeepsEncountered     int `json:"shopkeeps_encountered"`
	EventsEncountered        int `json:"events_encountered"`
	RestsTaken               int `json:"rests_taken"`
	BossesDefeated           int `json:"bosses_defeated"`
}

// DungeonRun is the mutable record of one party's progress through a
// story. It lives for the duration of the run only; it is never part of
// the persistent player save.
type DungeonRun struct {
	ID          string      `json:"id"`
	RealmID     string      `json:"realm_id"`
	ChannelID   string      `json:"channel_id"`
	DungeonType DungeonType `json:"dungeon_type"`
	Section     Section     `json:"section"`
	State       RunState    `json:"state"`
	Party       Party       `json:"party"`

	// RoomsUntilBoss counts down as rooms are entered. 0 forces a rest
	// room; -1 is the boss sentinel.
	RoomsUntilBoss int `json:"rooms_until_boss"`

	// Pity counters for the mystery sub-resolver
	NumMysteryWithoutTreasure int `json:"num_mystery_without_treasure"`
	NumMysteryWithoutShopkeep int `json:"num_mystery_without_shopkeep"`
	NumMysteryWithoutCombat   int `json:"num_mystery_without_combat"`

	// Corruption accumulates on ocean runs only
	Corruption int `json:"corruption"`

	// Anti-repeat markers for ocean combat/event content
	PreviousCombat string `json:"previous_combat"`
	PreviousEvent  string `json:"previous_event"`

	Stats Stats `json:"stats"`

	// Offered holds the categories at the current decision point
	Offered []RoomCategory `json:"offered"`

	// CurrentRoom is the room the party is inside, nil between rooms
	CurrentRoom *Room `json:"current_room,omitempty"`

	// AbandonVotes maps user ID to their abandon vote. Abandoning needs
	// unanimous party input; a vote simply waits until everyone has cast
	// one.
	AbandonVotes map[string]bool `json:"abandon_votes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// New creates a run for a party at the entrance of a story
func New(id, realmID, channelID string, dungeonType DungeonType, party Party, cfg ZoneConfig) *DungeonRun {
	sections := dungeonType.Sections()
	return &DungeonRun{
		ID:             id,
		RealmID:        realmID,
		ChannelID:      channelID,
		DungeonType:    dungeonType,
		Section:        sections[0],
		State:          RunStateAwaitingSelection,
		Party:          party,
		RoomsUntilBoss: cfg.StartingRoomsUntilBoss,
		CreatedAt:      time.Now(),
	}
}

// IsActive reports whether the run is still in progress
func (r *DungeonRun) IsActive() bool {
	return r.State != RunStateComplete && r.State != RunStateFailed
}

// RecordEntry applies the fixed bookkeeping for entering a room: one
// room explored, one step closer to the boss, and the category-specific
// cumulative counter. Content-driven adjustments to the boss countdown
// go through AdjustRoomsUntilBoss separately.
func (r *DungeonRun) RecordEntry(category RoomCategory) {
	r.Stats.RoomsExplored++
	r.RoomsUntilBoss--

	switch category {
	case RoomCategoryCombat:
		r.Stats.CombatEncounters++
	case RoomCategoryTreasure:
		r.Stats.TreasureRoomsEncountered++
	case RoomCategoryShopkeep:
		r.Stats.ShopkeepsEncountered++
	case RoomCategoryEvent:
		r.Stats.EventsEncountered++
	case RoomCategoryRest:
		r.Stats.RestsTaken++
	}
}

// AdjustRoomsUntilBoss applies a shortcut or detour from a room outcome.
// The countdown never drops below zero this way; the boss sentinel is
// only ever reached through the fixed per-entry decrement. Once the
// sentinel is set the boss is committed and content deltas no longer
// apply, so the zero floor cannot pull the run back out of it.
func (r *DungeonRun) AdjustRoomsUntilBoss(delta int) {
	if r.RoomsUntilBoss < 0 {
		return
	}
	r.RoomsUntilBoss += delta
	if r.RoomsUntilBoss < 0 {
		r.RoomsUntilBoss = 0
	}
}

// AdvanceSection moves to the section for the current countdown
// position, splitting the story into thirds of its starting length.
func (r *DungeonRun) AdvanceSection(cfg ZoneConfig) {
	sections := r.DungeonType.Sections()
	if len(sections) == 0 || cfg.StartingRoomsUntilBoss <= 0 {
		return
	}

	consumed := cfg.StartingRoomsUntilBoss - r.RoomsUntilBoss
	if consumed < 0 {
		consumed = 0
	}
	idx := consumed * len(sections) / cfg.StartingRoomsUntilBoss
	if idx >= len(sections) {
		idx = len(sections) - 1
	}
	r.Section = sections[idx]
}
