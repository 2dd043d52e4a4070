package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

// ParseMove reads "row col" from a line of input.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrInvalidMove, line)
	}

	coords := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidMove, field)
		}
		coords = append(coords, value)
	}

	row, col := coords[0], coords[1]
	if row < 0 || row >= engine.Size || col < 0 || col >= engine.Size {
		return 0, 0, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	return row, col, nil
}

// ParseBoard reads nine cells in row-major order. "X" and "O" are marks,
// "." "-" and "_" are empty.
func ParseBoard(s string) (engine.Board, error) {
	cells := []rune(strings.Join(strings.Fields(s), ""))
	if len(cells) != engine.Size*engine.Size {
		return engine.Board{}, fmt.Errorf("%w: expected 9 cells, got %d", apperror.ErrInvalidMove, len(cells))
	}

	var flat [engine.Size * engine.Size]engine.Mark
	for i, r := range cells {
		switch r {
		case 'X', 'x':
			flat[i] = engine.X
		case 'O', 'o':
			flat[i] = engine.O
		case '.', '-', '_':
			flat[i] = engine.Empty
		default:
			return engine.Board{}, fmt.Errorf("%w: unknown cell %q", apperror.ErrInvalidMove, r)
		}
	}

	return engine.BoardFromCells(flat), nil
}
