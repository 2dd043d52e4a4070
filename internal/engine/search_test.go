package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffCells(a, b Board) []int {
	var cells []int
	for i := 0; i < Size*Size; i++ {
		if a.Cell(i) != b.Cell(i) {
			cells = append(cells, i)
		}
	}

	return cells
}

func TestSearch(t *testing.T) {
	t.Run("Empty board terminates with a single move", func(t *testing.T) {
		// Given: the empty board and X to move
		board := NewBoard()

		// When: searching the whole tree
		result := Search(board, true, X, X)

		// Then: exactly one cell changed and it holds X
		cells := diffCells(board, result.Board)
		require.Len(t, cells, 1)
		assert.Equal(t, X, result.Board.Cell(cells[0]))
	})

	t.Run("Terminal board is returned with its evaluation", func(t *testing.T) {
		board := Board{
			{X, X, X},
			{O, O, Empty},
			{Empty, Empty, Empty},
		}

		result := Search(board, true, X, O)

		assert.Equal(t, board, result.Board)
		assert.Equal(t, Score(4), result.Score)
	})

	t.Run("Maximizer accumulates the child score onto MinInt32", func(t *testing.T) {
		// Given: one empty cell whose fill by X draws
		board := Board{
			{X, O, X},
			{X, O, O},
			{O, X, Empty},
		}

		// When: searching for X
		result := Search(board, true, X, X)

		// Then: the draw scores 0 and is added to the initial minimum
		assert.Equal(t, board.Place(2, 2, X), result.Board)
		assert.Equal(t, Score(math.MinInt32), result.Score)
	})

	t.Run("Accumulated score wraps around", func(t *testing.T) {
		// Given: one empty cell whose fill by X wins row 0
		board := Board{
			{X, X, Empty},
			{O, O, X},
			{X, O, O},
		}

		// When: searching for X as maximizer and as minimizer
		maxResult := Search(board, true, X, X)
		minResult := Search(board, false, X, X)

		// Then: the win is seen from O's side as -42 and the sums overflow
		assert.Equal(t, board.Place(0, 2, X), maxResult.Board)
		assert.Equal(t, Score(math.MaxInt32-41), maxResult.Score)
		assert.Equal(t, board.Place(0, 2, X), minResult.Board)
		assert.Equal(t, Score(math.MinInt32+41), minResult.Score)
	})

	t.Run("Two plies deep", func(t *testing.T) {
		// Given: X to move with cells 7 and 8 empty
		board := Board{
			{X, O, X},
			{X, O, O},
			{O, Empty, Empty},
		}

		// When: searching the raw tree
		tree := SearchTree(board, true, X, X)

		// Then: the maximizer keeps the minimizer's grandchild (X on 7, O on 8)
		assert.Equal(t, board.Place(2, 1, X).Place(2, 2, O), tree.Board)
		assert.Equal(t, Score(-1), tree.Score)

		// Then: the projected move is X on 7, blocking O's column
		result := Search(board, true, X, X)
		assert.Equal(t, board.Place(2, 1, X), result.Board)
		assert.Equal(t, tree.Score, result.Score)
	})
}

func TestSearchTree_SelectionRules(t *testing.T) {
	t.Run("Maximizer at the root keeps a grandchild and the earliest child on ties", func(t *testing.T) {
		// Given: the empty board with X to move
		board := NewBoard()

		// When: running the raw recursion
		result := SearchTree(board, true, X, X)

		// Then: the line X on 8, O on 7 wins with the accumulated score
		assert.Equal(t, Board{
			{Empty, Empty, Empty},
			{Empty, Empty, Empty},
			{Empty, O, X},
		}, result.Board)
		assert.Equal(t, Score(-104078), result.Score)
	})

	t.Run("Minimizer keeps its own child", func(t *testing.T) {
		// Given: O to move with four empty cells
		board := Board{
			{Empty, Empty, X},
			{Empty, X, Empty},
			{O, O, X},
		}

		// When: searching with O as the minimizer
		result := SearchTree(board, false, O, O)

		// Then: the stored board is one ply deep, O on cell 1
		assert.Equal(t, board.Place(0, 1, O), result.Board)
		assert.Equal(t, Score(41), result.Score)
	})
}
