package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrPositionDecided = errors.New("position is already decided")

func Move(_ *app) *cobra.Command {
	var turn string

	cmd := &cobra.Command{
		Use:   "move <cells>",
		Short: "Print the engine's move for a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`move reads a position as nine cells in row-major order,
			using X and O for marks and "." for empty cells, and prints
			the board after the engine's move together with its score.

			The side to move defaults to the one with fewer marks, or X
			when both have the same number.`),
		Example: heredoc.Doc(`
			$ tictactoe move X.O......
			$ tictactoe move --turn O "X.. .O. ..X"`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := tictactoe.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			if result := engine.Classify(board); result.Terminal() {
				return fmt.Errorf("%w: %s", ErrPositionDecided, tictactoe.Outcome(result))
			}

			mark := sideToMove(board)
			if turn != "" {
				if mark, err = engine.ParseMark(turn); err != nil || mark == engine.Empty {
					return fmt.Errorf("turn must be X or O, got %q", turn)
				}
			}

			return reportMove(cmd.OutOrStdout(), board, mark)
		},
	}

	cmd.Flags().StringVar(&turn, "turn", "", "Side to move (X or O)")

	return cmd
}

// reportMove searches board for mark and prints the chosen cell, the new
// board and the score.
func reportMove(w io.Writer, board engine.Board, mark engine.Mark) error {
	result := engine.Search(board, true, mark, mark)

	cell, ok := tictactoe.ChangedCell(board, result.Board)
	if !ok {
		return fmt.Errorf("%w: engine returned no move", apperror.ErrNoAvailableMoves)
	}

	if _, err := fmt.Fprintf(w, "%s plays row %d col %d\n%s", mark, cell/engine.Size, cell%engine.Size, tictactoe.Render(result.Board)); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}

	if _, err := fmt.Fprintf(w, "score: %d\n", result.Score); err != nil {
		return fmt.Errorf("failed to write score: %w", err)
	}

	return nil
}

func sideToMove(board engine.Board) engine.Mark {
	var xs, os int
	for _, mark := range board.Cells() {
		switch mark {
		case engine.X:
			xs++
		case engine.O:
			os++
		}
	}

	if os < xs {
		return engine.O
	}

	return engine.X
}
