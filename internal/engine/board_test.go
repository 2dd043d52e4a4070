package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, X, X.Opponent().Opponent())
}

func TestBoard_Place(t *testing.T) {
	// Given: an empty board
	board := NewBoard()

	// When: a mark is placed
	placed := board.Place(1, 2, X)

	// Then: the copy holds the mark and the original is untouched
	assert.Equal(t, X, placed[1][2])
	assert.Equal(t, Empty, board[1][2])
	assert.Equal(t, 9, board.EmptyCells())
	assert.Equal(t, 8, placed.EmptyCells())
}

func TestBoard_Cells(t *testing.T) {
	board := Board{
		{X, O, Empty},
		{Empty, X, Empty},
		{O, Empty, Empty},
	}

	cells := board.Cells()

	assert.Equal(t, [9]Mark{X, O, Empty, Empty, X, Empty, O, Empty, Empty}, cells)
	assert.Equal(t, O, board.Cell(6))
	assert.Equal(t, board, BoardFromCells(cells))
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Marks are encoded as strings", func(t *testing.T) {
		// Given: a board with both marks
		board := NewBoard().Place(0, 0, X).Place(2, 2, O)

		// When: marshaling it
		data, err := json.Marshal(board)
		require.NoError(t, err)

		// Then: cells are written as X, O or ""
		assert.JSONEq(t, `[["X","",""],["","",""],["","","O"]]`, string(data))

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, board, decoded)
	})

	t.Run("Unknown mark is rejected", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`[["Z","",""],["","",""],["","",""]]`), &board)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownMark)
	})
}
