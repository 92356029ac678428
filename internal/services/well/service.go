// Package well implements the wishing-well gacha: toss a coin, draw a
// reward tier, with a soft pity that raises the rare chance the longer
// a player goes without one.
package well

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/weighted"
)

const (
	// WishCost is the coin price of one toss
	WishCost = 10

	// RareBaseProb and RarePityIncrease shape the rare draw the same
	// way the mystery sub-resolver shapes starved categories
	RareBaseProb     = 0.05
	RarePityIncrease = 0.02

	uncommonProb = 0.25
)

// Reward is one wishing-well prize
type Reward struct {
	ItemKey string
	Name    string
	Coins   int
	Rarity  string
}

var (
	rareRewards = []Reward{
		{ItemKey: "wish-sigil", Name: "Wish Sigil", Rarity: "rare"},
		{ItemKey: "drowned-crown", Name: "Drowned Crown", Rarity: "rare"},
	}
	uncommonRewards = []Reward{
		{ItemKey: "lucky-coin", Name: "Lucky Coin", Coins: 15, Rarity: "uncommon"},
		{ItemKey: "polished-shell", Name: "Polished Shell", Coins: 8, Rarity: "uncommon"},
	}
	commonRewards = []Reward{
		{ItemKey: "wet-pebble", Name: "Wet Pebble", Rarity: "common"},
		{ItemKey: "bent-copper", Name: "Bent Copper", Coins: 2, Rarity: "common"},
	}
)

// Service runs the wishing well
type Service interface {
	// Wish tosses a coin into the well
	Wish(ctx context.Context, realmID, userID, displayName string) (*WishResult, error)
}

// WishResult is the outcome of one toss
type WishResult struct {
	Reward Reward
	Player *player.Player
}

type service struct {
	playerRepo players.Repository
	src        rng.Source
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	PlayerRepository players.Repository // Required
	Random           rng.Source         // Optional
}

// NewService creates a new wishing-well service
func NewService(cfg *ServiceConfig) Service {
	if cfg.PlayerRepository == nil {
		panic("player repository is required")
	}

	svc := &service{
		playerRepo: cfg.PlayerRepository,
		src:        cfg.Random,
	}
	if svc.src == nil {
		svc.src = rng.NewSource()
	}

	return svc
}

// Wish tosses a coin into the well
func (s *service) Wish(ctx context.Context, realmID, userID, displayName string) (*WishResult, error) {
	p, err := s.playerRepo.GetOrCreate(ctx, realmID, userID, displayName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load player")
	}

	if err := p.SpendCoins(WishCost); err != nil {
		return nil, err
	}

	pRare := RareBaseProb + RarePityIncrease*float64(p.WellPity)

	tier, ok := weighted.Pick(s.src.Float64(), []weighted.Threshold[string]{
		{Value: "rare", Bound: pRare},
		{Value: "uncommon", Bound: pRare + uncommonProb},
	})
	if !ok {
		tier = "common"
	}

	var pool []Reward
	switch tier {
	case "rare":
		p.WellPity = 0
		pool = rareRewards
	case "uncommon":
		p.WellPity++
		pool = uncommonRewards
	default:
		p.WellPity++
		pool = commonRewards
	}

	reward := pool[s.src.Intn(len(pool))]
	p.AddItem(reward.ItemKey, 1)
	p.AddCoins(reward.Coins)
	p.Stats.WishesMade++

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return nil, apperrors.Wrap(err, "failed to save player")
	}

	return &WishResult{Reward: reward, Player: p}, nil
}
