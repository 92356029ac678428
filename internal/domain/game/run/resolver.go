package run

import (
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/weighted"
)

// BossSentinel is the rooms-until-boss value that forces the boss room
const BossSentinel = -1

// Decision is the set of rooms offered at one decision point
type Decision struct {
	State   RunState
	Offered []RoomCategory
}

// NextDecision resolves the rooms offered at the next decision point.
// A countdown of 0 forces a single rest room, the sentinel forces the
// boss; otherwise 2 or 3 slots are drawn independently. Mystery slots
// resolve through ResolveMystery, which advances the pity counters as a
// side effect. Deterministic given the source's draws.
func NextDecision(r *DungeonRun, cfg ZoneConfig, src rng.Source) Decision {
	switch r.RoomsUntilBoss {
	case BossSentinel:
		r.State = RunStateBossForced
		r.Offered = []RoomCategory{RoomCategoryBoss}
	case 0:
		r.State = RunStateRestForced
		r.Offered = []RoomCategory{RoomCategoryRest}
	default:
		k := 2 + src.Intn(2)
		offered := make([]RoomCategory, 0, k)
		for i := 0; i < k; i++ {
			offered = append(offered, drawCategory(r, cfg, src))
		}
		r.State = RunStateRoomsOffered
		r.Offered = offered
	}

	return Decision{State: r.State, Offered: r.Offered}
}

// drawCategory performs the outer weighted draw for one slot
func drawCategory(r *DungeonRun, cfg ZoneConfig, src rng.Source) RoomCategory {
	category, ok := weighted.Pick(src.Float64(), []weighted.Threshold[RoomCategory]{
		{Value: RoomCategoryShopkeep, Bound: cfg.ShopkeepRoomProb},
		{Value: RoomCategoryRest, Bound: cfg.RestRoomProb},
		{Value: roomCategoryMystery, Bound: cfg.MysteryRoomProb},
	})
	if !ok {
		return RoomCategoryCombat
	}

	if category == roomCategoryMystery {
		return ResolveMystery(r, cfg, src.Float64())
	}

	return category
}

// ResolveMystery picks the concrete type behind a mystery room. The
// candidates are evaluated treasure, then shopkeep, then combat, on
// cumulative thresholds that grow with each category's pity counter;
// anything past the last threshold is an event. The matching counter
// resets to 0 and the other counters increment by 1; on the event
// fallback all three increment.
func ResolveMystery(r *DungeonRun, cfg ZoneConfig, r2 float64) RoomCategory {
	pTreasure := cfg.MysteryTreasureBaseProb + cfg.MysteryTreasureProbIncrease*float64(r.NumMysteryWithoutTreasure)
	pShopkeep := cfg.MysteryShopkeepBaseProb + cfg.MysteryShopkeepProbIncrease*float64(r.NumMysteryWithoutShopkeep)
	pCombat := cfg.MysteryCombatBaseProb + cfg.MysteryCombatProbIncrease*float64(r.NumMysteryWithoutCombat)

	category, ok := weighted.Pick(r2, []weighted.Threshold[RoomCategory]{
		{Value: RoomCategoryTreasure, Bound: pTreasure},
		{Value: RoomCategoryShopkeep, Bound: pTreasure + pShopkeep},
		{Value: RoomCategoryCombat, Bound: pTreasure + pShopkeep + pCombat},
	})
	if !ok {
		category = RoomCategoryEvent
	}

	switch category {
	case RoomCategoryTreasure:
		r.NumMysteryWithoutTreasure = 0
		r.NumMysteryWithoutShopkeep++
		r.NumMysteryWithoutCombat++
	case RoomCategoryShopkeep:
		r.NumMysteryWithoutTreasure++
		r.NumMysteryWithoutShopkeep = 0
		r.NumMysteryWithoutCombat++
	case RoomCategoryCombat:
		r.NumMysteryWithoutTreasure++
		r.NumMysteryWithoutShopkeep++
		r.NumMysteryWithoutCombat = 0
	default:
		r.NumMysteryWithoutTreasure++
		r.NumMysteryWithoutShopkeep++
		r.NumMysteryWithoutCombat++
	}

	return category
}
