package fishing

// Catch is one entry on a fishing odds table
type Catch struct {
	ItemKey string
	Name    string
	Coins   int
	XP      int
	Rarity  string
}

// tierTable is the odds table for one rod tier: probabilities are
// per-entry mass, accumulated into thresholds at draw time. The
// residual mass is the junk catch.
type tierTable struct {
	entries []tableEntry
	junk    Catch
}

type tableEntry struct {
	catch Catch
	prob  float64
}

// Better rods shift mass toward the rarer end of the table.
var rodTables = []tierTable{
	{
		entries: []tableEntry{
			{catch: Catch{ItemKey: "minnow", Name: "Minnow", Coins: 2, XP: 1, Rarity: "common"}, prob: 0.40},
			{catch: Catch{ItemKey: "perch", Name: "River Perch", Coins: 5, XP: 2, Rarity: "common"}, prob: 0.30},
			{catch: Catch{ItemKey: "catfish", Name: "Whiskered Catfish", Coins: 12, XP: 5, Rarity: "uncommon"}, prob: 0.15},
			{catch: Catch{ItemKey: "golden-carp", Name: "Golden Carp", Coins: 40, XP: 15, Rarity: "rare"}, prob: 0.05},
		},
		junk: Catch{ItemKey: "old-boot", Name: "Old Boot", Coins: 0, XP: 1, Rarity: "junk"},
	},
	{
		entries: []tableEntry{
			{catch: Catch{ItemKey: "minnow", Name: "Minnow", Coins: 2, XP: 1, Rarity: "common"}, prob: 0.25},
			{catch: Catch{ItemKey: "perch", Name: "River Perch", Coins: 5, XP: 2, Rarity: "common"}, prob: 0.30},
			{catch: Catch{ItemKey: "catfish", Name: "Whiskered Catfish", Coins: 12, XP: 5, Rarity: "uncommon"}, prob: 0.25},
			{catch: Catch{ItemKey: "golden-carp", Name: "Golden Carp", Coins: 40, XP: 15, Rarity: "rare"}, prob: 0.10},
			{catch: Catch{ItemKey: "moonfish", Name: "Moonfish", Coins: 100, XP: 40, Rarity: "legendary"}, prob: 0.02},
		},
		junk: Catch{ItemKey: "old-boot", Name: "Old Boot", Coins: 0, XP: 1, Rarity: "junk"},
	},
	{
		entries: []tableEntry{
			{catch: Catch{ItemKey: "perch", Name: "River Perch", Coins: 5, XP: 2, Rarity: "common"}, prob: 0.30},
			{catch: Catch{ItemKey: "catfish", Name: "Whiskered Catfish", Coins: 12, XP: 5, Rarity: "uncommon"}, prob: 0.30},
			{catch: Catch{ItemKey: "golden-carp", Name: "Golden Carp", Coins: 40, XP: 15, Rarity: "rare"}, prob: 0.20},
			{catch: Catch{ItemKey: "moonfish", Name: "Moonfish", Coins: 100, XP: 40, Rarity: "legendary"}, prob: 0.05},
		},
		junk: Catch{ItemKey: "tangled-net", Name: "Tangled Net", Coins: 1, XP: 1, Rarity: "junk"},
	},
}

// tableForTier clamps the rod tier onto a table
func tableForTier(tier int) tierTable {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(rodTables) {
		tier = len(rodTables) - 1
	}
	return rodTables[tier]
}

// rodUpgradeCost returns the price of moving to the next tier, or -1
// when the rod is maxed
func rodUpgradeCost(tier int) int {
	costs := []int{100, 400}
	if tier < 0 || tier >= len(costs) {
		return -1
	}
	return costs[tier]
}
