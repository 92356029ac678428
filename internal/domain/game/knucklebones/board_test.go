package knucklebones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	var b Board

	require.NoError(t, b.Place(0, 3))
	require.NoError(t, b.Place(0, 3))
	require.NoError(t, b.Place(0, 5))

	err := b.Place(0, 1)
	assert.Error(t, err, "column at depth should reject a fourth die")

	assert.Error(t, b.Place(3, 1), "column out of range")
	assert.Error(t, b.Place(1, 7), "die out of range")
	assert.Error(t, b.Place(1, 0), "die out of range")
}

func TestBoard_ColumnScoreMultipliesMatches(t *testing.T) {
	var b Board

	require.NoError(t, b.Place(0, 4))
	assert.Equal(t, 4, b.ColumnScore(0))

	require.NoError(t, b.Place(0, 4))
	assert.Equal(t, 16, b.ColumnScore(0), "two fours score 4*2*2")

	require.NoError(t, b.Place(0, 4))
	assert.Equal(t, 36, b.ColumnScore(0), "three fours score 4*3*3")

	require.NoError(t, b.Place(1, 2))
	require.NoError(t, b.Place(1, 5))
	assert.Equal(t, 7, b.ColumnScore(1), "mixed dice score their sum")

	assert.Equal(t, 43, b.Score())
}

func TestBoard_RemoveMatching(t *testing.T) {
	var b Board

	require.NoError(t, b.Place(1, 6))
	require.NoError(t, b.Place(1, 2))
	require.NoError(t, b.Place(1, 6))

	removed := b.RemoveMatching(1, 6)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{2}, b.Columns[1])

	assert.Equal(t, 0, b.RemoveMatching(1, 6))
}

func TestBoard_IsFull(t *testing.T) {
	var b Board
	assert.False(t, b.IsFull())

	for col := 0; col < BoardColumns; col++ {
		for depth := 0; depth < ColumnDepth; depth++ {
			require.NoError(t, b.Place(col, 1))
		}
	}
	assert.True(t, b.IsFull())
}
