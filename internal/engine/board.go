package engine

import (
	"errors"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

// Mark is the state of a single cell, and doubles as the player identifier.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

var ErrUnknownMark = errors.New("unknown mark")

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark converts "X", "O" or "" back into a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Board is a 3x3 grid. It is an array, so every assignment is a copy.
type Board [Size][Size]Mark

// NewBoard returns the empty grid.
func NewBoard() Board {
	return Board{}
}

// Place returns a copy of the board with the given cell set to mark.
func (that Board) Place(row, col int, mark Mark) Board {
	that[row][col] = mark
	return that
}

// Cell returns the mark at row-major index i.
func (that Board) Cell(i int) Mark {
	return that[i/Size][i%Size]
}

// Cells flattens the board in row-major order.
func (that Board) Cells() [Size * Size]Mark {
	var cells [Size * Size]Mark
	for i := range cells {
		cells[i] = that.Cell(i)
	}

	return cells
}

func (that Board) EmptyCells() int {
	count := 0
	for _, cell := range that.Cells() {
		if cell == Empty {
			count++
		}
	}

	return count
}

// BoardFromCells is the inverse of Cells.
func BoardFromCells(cells [Size * Size]Mark) Board {
	var board Board
	for i, cell := range cells {
		board[i/Size][i%Size] = cell
	}

	return board
}
