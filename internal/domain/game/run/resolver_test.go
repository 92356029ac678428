package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/adventure-bot/internal/rng"
)

func forestConfig() ZoneConfig {
	return DefaultZoneConfigs()[DungeonTypeForest]
}

func newForestRun() *DungeonRun {
	cfg := forestConfig()
	party := Party{{UserID: "user-1", DisplayName: "Leader"}}
	return New("run-1", "realm-1", "channel-1", DungeonTypeForest, party, cfg)
}

func TestNextDecision_BossSentinelForcesBoss(t *testing.T) {
	r := newForestRun()
	r.RoomsUntilBoss = BossSentinel

	// No draws queued: the forced branch must not consume randomness.
	decision := NextDecision(r, forestConfig(), rng.NewScripted(nil, nil))

	assert.Equal(t, RunStateBossForced, decision.State)
	assert.Equal(t, []RoomCategory{RoomCategoryBoss}, decision.Offered)
	assert.Equal(t, RunStateBossForced, r.State)
}

func TestNextDecision_ZeroCountdownForcesRest(t *testing.T) {
	r := newForestRun()
	r.RoomsUntilBoss = 0

	decision := NextDecision(r, forestConfig(), rng.NewScripted(nil, nil))

	assert.Equal(t, RunStateRestForced, decision.State)
	assert.Equal(t, []RoomCategory{RoomCategoryRest}, decision.Offered)
}

func TestNextDecision_TwoSlots(t *testing.T) {
	r := newForestRun()

	// k = 2 + 0; 0.05 lands in shopkeep, 0.15 in rest.
	src := rng.NewScripted([]float64{0.05, 0.15}, []int{0})
	decision := NextDecision(r, forestConfig(), src)

	assert.Equal(t, RunStateRoomsOffered, decision.State)
	assert.Equal(t, []RoomCategory{RoomCategoryShopkeep, RoomCategoryRest}, decision.Offered)
}

func TestNextDecision_ThreeSlotsResidualCombat(t *testing.T) {
	r := newForestRun()

	// k = 2 + 1; everything above the mystery bound (0.55) is combat.
	src := rng.NewScripted([]float64{0.95, 0.90, 0.70}, []int{1})
	decision := NextDecision(r, forestConfig(), src)

	require.Len(t, decision.Offered, 3)
	for _, c := range decision.Offered {
		assert.Equal(t, RoomCategoryCombat, c)
	}
}

func TestNextDecision_MysterySlotResolvesAtGenerationTime(t *testing.T) {
	r := newForestRun()

	// Slot 1: 0.30 is a mystery; its sub-draw 0.10 lands under the
	// treasure bound (0.15). Slot 2: 0.95 is residual combat.
	src := rng.NewScripted([]float64{0.30, 0.10, 0.95}, []int{0})
	decision := NextDecision(r, forestConfig(), src)

	assert.Equal(t, []RoomCategory{RoomCategoryTreasure, RoomCategoryCombat}, decision.Offered)

	// Pity moved when the mystery resolved, not when a room is entered.
	assert.Equal(t, 0, r.NumMysteryWithoutTreasure)
	assert.Equal(t, 1, r.NumMysteryWithoutShopkeep)
	assert.Equal(t, 1, r.NumMysteryWithoutCombat)
}

func TestNextDecision_DeterministicGivenSameDraws(t *testing.T) {
	draws := []float64{0.30, 0.40, 0.62}
	ints := []int{0}

	first := newForestRun()
	second := newForestRun()

	d1 := NextDecision(first, forestConfig(), rng.NewScripted(draws, ints))
	d2 := NextDecision(second, forestConfig(), rng.NewScripted(draws, ints))

	assert.Equal(t, d1, d2)
	assert.Equal(t, first.NumMysteryWithoutTreasure, second.NumMysteryWithoutTreasure)
	assert.Equal(t, first.NumMysteryWithoutShopkeep, second.NumMysteryWithoutShopkeep)
	assert.Equal(t, first.NumMysteryWithoutCombat, second.NumMysteryWithoutCombat)
}

func TestResolveMystery_ResidualEventIncrementsAll(t *testing.T) {
	r := newForestRun()

	// Zero counters: bounds are 0.15 / 0.25 / 0.50, so 0.55 is an event.
	category := ResolveMystery(r, forestConfig(), 0.55)

	assert.Equal(t, RoomCategoryEvent, category)
	assert.Equal(t, 1, r.NumMysteryWithoutTreasure)
	assert.Equal(t, 1, r.NumMysteryWithoutShopkeep)
	assert.Equal(t, 1, r.NumMysteryWithoutCombat)
}

func TestResolveMystery_PityWidensThresholds(t *testing.T) {
	r := newForestRun()
	r.NumMysteryWithoutTreasure = 1
	r.NumMysteryWithoutShopkeep = 1
	r.NumMysteryWithoutCombat = 1

	// With one starved cycle the bounds grow to 0.20 / 0.35 / 0.65, so
	// the same 0.55 draw that was an event now lands on combat.
	category := ResolveMystery(r, forestConfig(), 0.55)

	assert.Equal(t, RoomCategoryCombat, category)
	assert.Equal(t, 2, r.NumMysteryWithoutTreasure)
	assert.Equal(t, 2, r.NumMysteryWithoutShopkeep)
	assert.Equal(t, 0, r.NumMysteryWithoutCombat)
}

func TestResolveMystery_MatchResetsOnlyItsCounter(t *testing.T) {
	r := newForestRun()
	r.NumMysteryWithoutTreasure = 3
	r.NumMysteryWithoutShopkeep = 2
	r.NumMysteryWithoutCombat = 1

	// pTreasure = 0.15 + 3*0.05 = 0.30
	category := ResolveMystery(r, forestConfig(), 0.29)

	assert.Equal(t, RoomCategoryTreasure, category)
	assert.Equal(t, 0, r.NumMysteryWithoutTreasure)
	assert.Equal(t, 3, r.NumMysteryWithoutShopkeep)
	assert.Equal(t, 2, r.NumMysteryWithoutCombat)
}

func TestResolveMystery_ShopkeepWindow(t *testing.T) {
	r := newForestRun()

	// Between pTreasure (0.15) and pTreasure+pShopkeep (0.25).
	category := ResolveMystery(r, forestConfig(), 0.20)

	assert.Equal(t, RoomCategoryShopkeep, category)
	assert.Equal(t, 1, r.NumMysteryWithoutTreasure)
	assert.Equal(t, 0, r.NumMysteryWithoutShopkeep)
	assert.Equal(t, 1, r.NumMysteryWithoutCombat)
}
