package fishing

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/weighted"
)

// Service runs the fishing minigame
type Service interface {
	// Fish performs one cast and applies the catch to the player
	Fish(ctx context.Context, realmID, userID, displayName string) (*CatchResult, error)

	// UpgradeRod buys the next rod tier
	UpgradeRod(ctx context.Context, realmID, userID, displayName string) (*player.Player, error)
}

// CatchResult is the outcome of one cast
type CatchResult struct {
	Catch  Catch
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

// NewService creates a new fishing service
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

// Fish performs one cast and applies the catch to the player
func (s *service) Fish(ctx context.Context, realmID, userID, displayName string) (*CatchResult, error) {
	p, err := s.playerRepo.GetOrCreate(ctx, realmID, userID, displayName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load player")
	}

	table := tableForTier(p.RodTier)

	thresholds := make([]weighted.Threshold[Catch], 0, len(table.entries))
	cumulative := 0.0
	for _, e := range table.entries {
		cumulative += e.prob
		thresholds = append(thresholds, weighted.Threshold[Catch]{Value: e.catch, Bound: cumulative})
	}

	caught, ok := weighted.Pick(s.src.Float64(), thresholds)
	if !ok {
		caught = table.junk
	}

	p.AddItem(caught.ItemKey, 1)
	p.AddCoins(caught.Coins)
	p.XP += caught.XP
	p.Stats.FishCaught++

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return nil, apperrors.Wrap(err, "failed to save player")
	}

	return &CatchResult{Catch: caught, Player: p}, nil
}

// UpgradeRod buys the next rod tier
func (s *service) UpgradeRod(ctx context.Context, realmID, userID, displayName string) (*player.Player, error) {
	p, err := s.playerRepo.GetOrCreate(ctx, realmID, userID, displayName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load player")
	}

	cost := rodUpgradeCost(p.RodTier)
	if cost < 0 {
		return nil, apperrors.InvalidArgument("your rod is already the best there is")
	}
	if err := p.SpendCoins(cost); err != nil {
		return nil, err
	}
	p.RodTier++

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return nil, apperrors.Wrap(err, "failed to save player")
	}

	return p, nil
}
