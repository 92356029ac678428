package player

import (
	"time"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

// Dueling tracks a player's duel state, shared between knucklebones
// challenges and dungeon combat rooms
type Dueling struct {
	IsInCombat    bool     `json:"is_in_combat"`
	StatusEffects []string `json:"status_effects,omitempty"`
}

// DungeonFlags are the cross-session dungeon-run flags the run engine
// reads and writes on the persistent record
type DungeonFlags struct {
	InDungeonRun   bool   `json:"in_dungeon_run"`
	InRestArea     bool   `json:"in_rest_area"`
	Corruption     int    `json:"corruption"`
	PreviousCombat string `json:"previous_combat,omitempty"`
	PreviousEvent  string `json:"previous_event,omitempty"`
}

// Stats are lifetime accumulators across every activity
type Stats struct {
	RoomsExplored            int `json:"rooms_explored"`
	CombatEncounters         int `json:"combat_encounters"`
	TreasureRoomsEncountered int `json:"treasure_rooms_encountered"`
	ShopkeepsEncountered     int `json:"shopkeeps_encountered"`
	EventsEncountered        int `json:"events_encountered"`
	RestsTaken               int `json:"rests_taken"`
	BossesDefeated           int `json:"bosses_defeated"`
	FishCaught               int `json:"fish_caught"`
	WishesMade               int `json:"wishes_made"`
	KnucklebonesWon          int `json:"knucklebones_won"`
	KnucklebonesLost         int `json:"knucklebones_lost"`
}

// Player is the persistent record for one user in one realm
type Player struct {
	RealmID     string `json:"realm_id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`

	Coins     int            `json:"coins"`
	XP        int            `json:"xp"`
	Inventory map[string]int `json:"inventory"`
	RodTier   int            `json:"rod_tier"`
	WellPity  int            `json:"well_pity"`

	Stats      Stats        `json:"stats"`
	Dueling    Dueling      `json:"dueling"`
	DungeonRun DungeonFlags `json:"dungeon_run"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a fresh player record
func New(realmID, userID, displayName string) *Player {
	return &Player{
		RealmID:     realmID,
		UserID:      userID,
		DisplayName: displayName,
		Coins:       50,
		Inventory:   make(map[string]int),
	}
}

// AddItem adds count of an item to the inventory
func (p *Player) AddItem(key string, count int) {
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	p.Inventory[key] += count
}

// RemoveItem removes count of an item, failing if the player does not
// hold enough
func (p *Player) RemoveItem(key string, count int) error {
	if p.Inventory[key] < count {
		return apperrors.InvalidArgumentf("not enough %s: have %d, need %d", key, p.Inventory[key], count)
	}
	p.Inventory[key] -= count
	if p.Inventory[key] == 0 {
		delete(p.Inventory, key)
	}
	return nil
}

// SpendCoins deducts coins, failing if the player cannot afford it
func (p *Player) SpendCoins(amount int) error {
	if p.Coins < amount {
		return apperrors.InvalidArgumentf("not enough coins: have %d, need %d", p.Coins, amount)
	}
	p.Coins -= amount
	return nil
}

// AddCoins credits coins
func (p *Player) AddCoins(amount int) {
	p.Coins += amount
}
