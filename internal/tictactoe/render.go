package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

// Render draws the board one row per line, "-" for empty cells, followed by a
// blank line.
func Render(board engine.Board) string {
	var sb strings.Builder

	for _, row := range board {
		for col, cell := range row {
			if cell == engine.Empty {
				sb.WriteString("-")
			} else {
				sb.WriteString(cell.String())
			}

			if col != len(row)-1 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
