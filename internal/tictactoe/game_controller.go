package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn applies a human move to the game.
func MakeTurn(gameInstance *entity.Game, mark engine.Mark, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := gameInstance.MakeTurn(mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// BotTurn lets the engine move for the side whose turn it is and replaces the
// board with the engine's choice.
func BotTurn(gameInstance *entity.Game) (engine.SearchResult, error) {
	if gameInstance.IsFinished() {
		return engine.SearchResult{}, apperror.ErrGameFinished
	}

	if gameInstance.Board.EmptyCells() == 0 {
		return engine.SearchResult{}, apperror.ErrNoAvailableMoves
	}

	turn := gameInstance.Turn
	result := engine.Search(gameInstance.Board, true, turn, turn)

	cell, ok := ChangedCell(gameInstance.Board, result.Board)
	if !ok {
		return result, fmt.Errorf("%w: engine returned no move", apperror.ErrNoAvailableMoves)
	}

	if err := gameInstance.MakeTurn(turn, cell); err != nil {
		return result, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result, nil
}

// ChangedCell returns the row-major index of the cell that differs between a
// board and the board after one move.
func ChangedCell(before, after engine.Board) (int, bool) {
	for i := 0; i < engine.Size*engine.Size; i++ {
		if before.Cell(i) != after.Cell(i) {
			return i, true
		}
	}

	return 0, false
}

// Outcome describes how a finished position ended.
func Outcome(result engine.Result) string {
	switch result {
	case engine.WinX:
		return "X won"
	case engine.WinO:
		return "O won"
	case engine.Draw:
		return "It's a tie"
	default:
		return "game in progress"
	}
}
