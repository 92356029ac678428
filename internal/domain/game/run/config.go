package run

// ZoneConfig holds the numeric tuning for one story's room resolution.
// The outer probabilities are cumulative upper bounds in [0,1]; the
// residual mass above MysteryRoomProb is combat.
type ZoneConfig struct {
	ShopkeepRoomProb float64
	RestRoomProb     float64
	MysteryRoomProb  float64

	MysteryTreasureBaseProb     float64
	MysteryTreasureProbIncrease float64
	MysteryShopkeepBaseProb     float64
	MysteryShopkeepProbIncrease float64
	MysteryCombatBaseProb       float64
	MysteryCombatProbIncrease   float64

	StartingRoomsUntilBoss int
}

// DefaultZoneConfigs returns the tuning for each story
func DefaultZoneConfigs() map[DungeonType]ZoneConfig {
	return map[DungeonType]ZoneConfig{
		DungeonTypeForest: {
			ShopkeepRoomProb: 0.10,
			RestRoomProb:     0.20,
			MysteryRoomProb:  0.55,

			MysteryTreasureBaseProb:     0.15,
			MysteryTreasureProbIncrease: 0.05,
			MysteryShopkeepBaseProb:     0.10,
			MysteryShopkeepProbIncrease: 0.05,
			MysteryCombatBaseProb:       0.25,
			MysteryCombatProbIncrease:   0.05,

			StartingRoomsUntilBoss: 12,
		},
		DungeonTypeOcean: {
			ShopkeepRoomProb: 0.10,
			RestRoomProb:     0.20,
			MysteryRoomProb:  0.60,

			MysteryTreasureBaseProb:     0.15,
			MysteryTreasureProbIncrease: 0.05,
			MysteryShopkeepBaseProb:     0.10,
			MysteryShopkeepProbIncrease: 0.05,
			MysteryCombatBaseProb:       0.30,
			MysteryCombatProbIncrease:   0.05,

			StartingRoomsUntilBoss: 14,
		},
		DungeonTypeUnderworld: {
			ShopkeepRoomProb: 0.08,
			RestRoomProb:     0.18,
			MysteryRoomProb:  0.55,

			MysteryTreasureBaseProb:     0.12,
			MysteryTreasureProbIncrease: 0.05,
			MysteryShopkeepBaseProb:     0.08,
			MysteryShopkeepProbIncrease: 0.05,
			MysteryCombatBaseProb:       0.30,
			MysteryCombatProbIncrease:   0.06,

			StartingRoomsUntilBoss: 16,
		},
	}
}
