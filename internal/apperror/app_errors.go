package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNotFound         = errors.New("not found")
	ErrNoActiveGame     = errors.New("no active game")
)
