package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the engine's move for the bot player of game.
func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	if game.Turn != botPlayer.Mark {
		return apperror.ErrNotYourTurn
	}

	before := game.Board
	started := time.Now()

	result, err := tictactoe.BotTurn(game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	cell, _ := tictactoe.ChangedCell(before, game.Board)
	log.Debug("bot moved", "mark", botPlayer.Mark.String(), "cell", cell, "score", result.Score, "elapsed", time.Since(started))

	return nil
}
