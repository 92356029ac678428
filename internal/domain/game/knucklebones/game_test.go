package knucklebones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

func newTestGame() *Game {
	return NewGame("game-1", "realm-1", "challenger", "opponent", 20)
}

func TestGame_AcceptOnlyByChallenged(t *testing.T) {
	g := newTestGame()

	err := g.Accept("challenger")
	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))
	assert.Equal(t, GameStateAwaitingAccept, g.State)

	require.NoError(t, g.Accept("opponent"))
	assert.Equal(t, GameStateInProgress, g.State)

	assert.Error(t, g.Accept("opponent"), "cannot accept twice")
}

func TestGame_DeclineOnlyByChallenged(t *testing.T) {
	g := newTestGame()

	err := g.Decline("challenger")
	assert.True(t, apperrors.IsPermissionDenied(err))

	require.NoError(t, g.Decline("opponent"))
	assert.Equal(t, GameStateDeclined, g.State)
}

func TestGame_TurnOrder(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Accept("opponent"))

	// Challenger goes first.
	err := g.SetPendingDie("opponent", 3)
	assert.True(t, apperrors.IsPermissionDenied(err))

	require.NoError(t, g.SetPendingDie("challenger", 3))
	assert.Error(t, g.SetPendingDie("challenger", 4), "one pending die at a time")

	err = g.PlaceDie("opponent", 0)
	assert.True(t, apperrors.IsPermissionDenied(err))

	require.NoError(t, g.PlaceDie("challenger", 0))
	assert.Equal(t, 1, g.Turn)
	assert.Equal(t, 0, g.PendingDie)

	assert.Error(t, g.PlaceDie("opponent", 0), "must roll before placing")
}

func TestGame_PlacingDestroysOpponentMatches(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Accept("opponent"))

	require.NoError(t, g.SetPendingDie("challenger", 5))
	require.NoError(t, g.PlaceDie("challenger", 2))

	require.NoError(t, g.SetPendingDie("opponent", 5))
	require.NoError(t, g.PlaceDie("opponent", 2))

	assert.Empty(t, g.Boards[0].Columns[2], "challenger's five was destroyed")
	assert.Equal(t, []int{5}, g.Boards[1].Columns[2])
}

func TestGame_FullBoardFinishesAndScores(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Accept("opponent"))

	// The challenger fills their board with sixes while the opponent
	// places ones in the columns the challenger is not using... there
	// are only three columns, so the opponent mirrors with ones and
	// loses on score.
	dies := []struct {
		player string
		die    int
		column int
	}{
		{"challenger", 6, 0}, {"opponent", 1, 0},
		{"challenger", 6, 0}, {"opponent", 1, 0},
		{"challenger", 6, 0}, {"opponent", 1, 0},
		{"challenger", 6, 1}, {"opponent", 1, 1},
		{"challenger", 6, 1}, {"opponent", 1, 1},
		{"challenger", 6, 1}, {"opponent", 1, 1},
		{"challenger", 6, 2}, {"opponent", 1, 2},
		{"challenger", 6, 2}, {"opponent", 1, 2},
		{"challenger", 6, 2},
	}
	for _, d := range dies {
		require.NoError(t, g.SetPendingDie(d.player, d.die))
		require.NoError(t, g.PlaceDie(d.player, d.column))
	}

	assert.Equal(t, GameStateComplete, g.State)
	assert.Equal(t, "challenger", g.Winner)

	a, b := g.Scores()
	assert.Equal(t, 6*9*3, a, "three columns of three sixes")
	assert.Greater(t, a, b)
}
