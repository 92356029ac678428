package fishing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/services/fishing"
)

func newService(src *rng.Scripted) (fishing.Service, players.Repository) {
	repo := players.NewInMemoryRepository()
	svc := fishing.NewService(&fishing.ServiceConfig{
		PlayerRepository: repo,
		Random:           src,
	})
	return svc, repo
}

func TestFish_AppliesCatchToPlayer(t *testing.T) {
	ctx := context.Background()

	// Tier 0 table: 0.40 minnow / 0.70 perch / 0.85 catfish / 0.90 carp.
	src := rng.NewScripted([]float64{0.75}, nil)
	svc, repo := newService(src)

	result, err := svc.Fish(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)

	assert.Equal(t, "catfish", result.Catch.ItemKey)
	assert.Equal(t, "uncommon", result.Catch.Rarity)

	p, err := repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Inventory["catfish"])
	assert.Equal(t, 50+12, p.Coins)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, 1, p.Stats.FishCaught)
}

func TestFish_ResidualIsJunk(t *testing.T) {
	ctx := context.Background()

	src := rng.NewScripted([]float64{0.95}, nil)
	svc, repo := newService(src)

	result, err := svc.Fish(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)

	assert.Equal(t, "junk", result.Catch.Rarity)
	assert.Equal(t, "old-boot", result.Catch.ItemKey)

	p, err := repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Stats.FishCaught, "junk still counts as a cast")
}

func TestFish_BetterRodShiftsTable(t *testing.T) {
	ctx := context.Background()

	src := rng.NewScripted([]float64{0.91}, nil)
	svc, repo := newService(src)

	p, err := repo.GetOrCreate(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)
	p.RodTier = 1
	require.NoError(t, repo.Update(ctx, p))

	// Tier 1: cumulative carp bound is 0.90, moonfish 0.92.
	result, err := svc.Fish(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)
	assert.Equal(t, "moonfish", result.Catch.ItemKey)
}

func TestUpgradeRod(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(rng.NewScripted(nil, nil))

	p, err := repo.GetOrCreate(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)
	p.Coins = 600
	require.NoError(t, repo.Update(ctx, p))

	p, err = svc.UpgradeRod(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)
	assert.Equal(t, 1, p.RodTier)
	assert.Equal(t, 500, p.Coins)

	p, err = svc.UpgradeRod(ctx, "realm-1", "user-1", "Angler")
	require.NoError(t, err)
	assert.Equal(t, 2, p.RodTier)
	assert.Equal(t, 100, p.Coins)

	_, err = svc.UpgradeRod(ctx, "realm-1", "user-1", "Angler")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err), "top tier cannot upgrade")
}

func TestUpgradeRod_InsufficientCoins(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(rng.NewScripted(nil, nil))

	// A fresh save holds 50 coins; the first upgrade costs 100.
	_, err := svc.UpgradeRod(ctx, "realm-1", "user-1", "Angler")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))
}
