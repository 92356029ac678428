package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/adventure-bot/internal/rng"
)

func newOceanRun() *DungeonRun {
	cfg := DefaultZoneConfigs()[DungeonTypeOcean]
	party := Party{{UserID: "user-1", DisplayName: "Leader"}}
	return New("run-1", "realm-1", "channel-1", DungeonTypeOcean, party, cfg)
}

func TestBuildRoom_OceanExcludesPreviousCombat(t *testing.T) {
	r := newOceanRun()
	r.PreviousCombat = "shallows_crabs"

	// Three section entries, one excluded: index 0 of the remaining two.
	room := BuildRoom(RoomCategoryCombat, r, rng.NewScripted(nil, []int{0}))

	require.NotNil(t, room)
	assert.NotEqual(t, "shallows_crabs", room.Key)
	assert.Equal(t, RoomCategoryCombat, room.Category)
	assert.NotEmpty(t, room.Monsters)
}

func TestBuildRoom_OceanExcludesPreviousEvent(t *testing.T) {
	r := newOceanRun()
	r.PreviousEvent = "shallows_current"

	for draw := 0; draw < 2; draw++ {
		room := BuildRoom(RoomCategoryEvent, r, rng.NewScripted(nil, []int{draw}))
		require.NotNil(t, room)
		assert.NotEqual(t, "shallows_current", room.Key)
	}
}

func TestBuildRoom_ForestDoesNotExclude(t *testing.T) {
	r := newForestRun()
	r.PreviousCombat = "grove_wolves"

	// Index 0 still resolves to the marked room: no exclusion outside
	// the ocean story.
	room := BuildRoom(RoomCategoryCombat, r, rng.NewScripted(nil, []int{0}))

	require.NotNil(t, room)
	assert.Equal(t, "grove_wolves", room.Key)
}

func TestBuildRoom_DoesNotMutateRun(t *testing.T) {
	r := newOceanRun()
	before := *r

	_ = BuildRoom(RoomCategoryCombat, r, rng.NewScripted(nil, []int{1}))

	assert.Equal(t, before.PreviousCombat, r.PreviousCombat)
	assert.Equal(t, before.Stats, r.Stats)
	assert.Equal(t, before.RoomsUntilBoss, r.RoomsUntilBoss)
}

func TestBuildRoom_FixedRooms(t *testing.T) {
	r := newForestRun()

	// Shopkeep, rest and boss rooms are fixed per story: no draws.
	src := rng.NewScripted(nil, nil)

	shop := BuildRoom(RoomCategoryShopkeep, r, src)
	require.NotNil(t, shop)
	assert.Equal(t, "forest_shopkeep", shop.Key)

	rest := BuildRoom(RoomCategoryRest, r, src)
	require.NotNil(t, rest)
	assert.Equal(t, "forest_rest", rest.Key)

	boss := BuildRoom(RoomCategoryBoss, r, src)
	require.NotNil(t, boss)
	assert.Equal(t, "forest_boss", boss.Key)
	assert.NotEmpty(t, boss.Monsters)
}

func TestBuildRoom_EverySectionHasContent(t *testing.T) {
	for _, dt := range []DungeonType{DungeonTypeForest, DungeonTypeOcean, DungeonTypeUnderworld} {
		cfg := DefaultZoneConfigs()[dt]
		party := Party{{UserID: "user-1", DisplayName: "Leader"}}
		r := New("run-1", "realm-1", "channel-1", dt, party, cfg)

		for _, section := range dt.Sections() {
			r.Section = section
			for _, category := range []RoomCategory{RoomCategoryCombat, RoomCategoryEvent, RoomCategoryTreasure} {
				room := BuildRoom(category, r, rng.NewScripted(nil, []int{0}))
				require.NotNil(t, room, "%s/%s/%s", dt, section, category)
				assert.NotEmpty(t, room.Name)
				assert.NotEmpty(t, room.Description)
			}
		}
	}
}
