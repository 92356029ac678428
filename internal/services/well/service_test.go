package well_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/services/well"
)

func newService(src *rng.Scripted) (well.Service, players.Repository) {
	repo := players.NewInMemoryRepository()
	svc := well.NewService(&well.ServiceConfig{
		PlayerRepository: repo,
		Random:           src,
	})
	return svc, repo
}

func TestWish_CommonDrawGrowsPity(t *testing.T) {
	ctx := context.Background()

	// 0.90 is past rare (0.05) and uncommon (0.30): a common reward.
	src := rng.NewScripted([]float64{0.90}, []int{0})
	svc, repo := newService(src)

	result, err := svc.Wish(ctx, "realm-1", "user-1", "Dreamer")
	require.NoError(t, err)
	assert.Equal(t, "common", result.Reward.Rarity)

	p, err := repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.WellPity)
	assert.Equal(t, 1, p.Stats.WishesMade)
	assert.Equal(t, 50-well.WishCost+result.Reward.Coins, p.Coins)
	assert.Equal(t, 1, p.Inventory[result.Reward.ItemKey])
}

func TestWish_PityRaisesRareChanceAndResets(t *testing.T) {
	ctx := context.Background()
	src := rng.NewScripted(nil, nil)
	svc, repo := newService(src)

	p, err := repo.GetOrCreate(ctx, "realm-1", "user-1", "Dreamer")
	require.NoError(t, err)
	p.WellPity = 10
	p.Coins = 100
	require.NoError(t, repo.Update(ctx, p))

	// pRare = 0.05 + 0.02*10 = 0.25: a 0.20 draw is rare now, though it
	// would not have been at zero pity.
	src.PushFloat(0.20)
	src.PushInt(0)

	result, err := svc.Wish(ctx, "realm-1", "user-1", "Dreamer")
	require.NoError(t, err)
	assert.Equal(t, "rare", result.Reward.Rarity)

	p, err = repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.WellPity, "a rare resets the pity")
}

func TestWish_UncommonWindow(t *testing.T) {
	ctx := context.Background()

	// Between rare (0.05) and rare+uncommon (0.30).
	src := rng.NewScripted([]float64{0.15}, []int{1})
	svc, repo := newService(src)

	result, err := svc.Wish(ctx, "realm-1", "user-1", "Dreamer")
	require.NoError(t, err)
	assert.Equal(t, "uncommon", result.Reward.Rarity)

	p, err := repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.WellPity, "non-rare draws grow the pity")
}

func TestWish_RequiresCoins(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(rng.NewScripted(nil, nil))

	p, err := repo.GetOrCreate(ctx, "realm-1", "user-1", "Dreamer")
	require.NoError(t, err)
	p.Coins = well.WishCost - 1
	require.NoError(t, repo.Update(ctx, p))

	_, err = svc.Wish(ctx, "realm-1", "user-1", "Dreamer")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	p, err = repo.Get(ctx, "realm-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.WellPity, "a failed wish moves nothing")
}
