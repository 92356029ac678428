// Package knucklebones implements the two-player dice board game.
// Each player fills a 3x3 board column by column; placing a die
// destroys every matching die in the opponent's same column, and
// matched dice in a column multiply its score.
package knucklebones

import (
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

const (
	// BoardColumns is the number of columns on each board
	BoardColumns = 3

	// ColumnDepth is the number of dice a column holds
	ColumnDepth = 3

	// DieSides is the die used for every placement
	DieSides = 6
)

// Board is one player's side of the table
type Board struct {
	Columns [BoardColumns][]int `json:"columns"`
}

// Place puts a die at the bottom of a column
func (b *Board) Place(column, die int) error {
	if column < 0 || column >= BoardColumns {
		return apperrors.InvalidArgumentf("column must be 0-%d", BoardColumns-1)
	}
	if die < 1 || die > DieSides {
		return apperrors.InvalidArgumentf("die must be 1-%d", DieSides)
	}
	if len(b.Columns[column]) >= ColumnDepth {
		return apperrors.InvalidArgument("column is full")
	}
	b.Columns[column] = append(b.Columns[column], die)
	return nil
}

// RemoveMatching destroys every die of the given value in a column,
// returning how many were removed
func (b *Board) RemoveMatching(column, die int) int {
	kept := b.Columns[column][:0]
	removed := 0
	for _, d := range b.Columns[column] {
		if d == die {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	b.Columns[column] = kept
	return removed
}

// IsFull reports whether every column is at depth
func (b *Board) IsFull() bool {
	for _, col := range b.Columns {
		if len(col) < ColumnDepth {
			return false
		}
	}
	return true
}

// ColumnScore scores one column: each die contributes its value
// multiplied by how many dice of that value share the column
func (b *Board) ColumnScore(column int) int {
	counts := make(map[int]int)
	for _, d := range b.Columns[column] {
		counts[d]++
	}
	score := 0
	for value, count := range counts {
		score += value * count * count
	}
	return score
}

// Score totals every column
func (b *Board) Score() int {
	total := 0
	for i := range b.Columns {
		total += b.ColumnScore(i)
	}
	return total
}
