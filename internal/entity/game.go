package entity

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie = "-"
)

const WithBotType = "bot"

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string       `json:"id"`
	Board   engine.Board `json:"board"`
	Winner  string       `json:"winner"`
	Status  string       `json:"status"`
	Turn    engine.Mark  `json:"player_turn"`
	Players []*Player    `json:"players,omitempty"`
	Type    string       `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.NewBoard(),
		Turn:   engine.X,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

func (that *Game) DetermineGameResult() engine.Result {
	return engine.Classify(that.Board)
}

func (that *Game) UpdateGameState() {
	switch result := that.DetermineGameResult(); result {
	// one player wins
	case engine.WinX, engine.WinO:
		that.Winner = result.Winner().String()
		that.Status = StatusFinished
		that.Turn = engine.Empty
	case engine.Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = engine.Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn places mark on the row-major cell and passes the turn.
func (that *Game) MakeTurn(mark engine.Mark, cell int) error {
	if cell < 0 || cell >= engine.Size*engine.Size {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.Cell(cell) != engine.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board = that.Board.Place(cell/engine.Size, cell%engine.Size, mark)
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}

// Masked returns a copy of the game without the player list and game type,
// for sending to clients.
func (that *Game) Masked() *Game {
	masked := *that
	masked.Players = nil
	masked.Type = ""

	return &masked
}

// GetRandomMarks returns the human mark first and the bot mark second.
func (that *Game) GetRandomMarks() (engine.Mark, engine.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return engine.X, engine.O
	}
	return engine.O, engine.X
}
