package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameManager runs games between a session player and the bot.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	bot        botService

	// marks decides the human and bot marks of a new game.
	marks func(game *entity.Game) (engine.Mark, engine.Mark)
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		bot:        bot,

		marks: (*entity.Game).GetRandomMarks,
	}
}

// MakeTurn plays the human move and the bot reply. A finished game is removed
// from storage and returned together with apperror.ErrGameFinished.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	if err = tictactoe.MakeTurn(game, player.Mark, cell); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			that.deleteGame(ctx, game)

			return game, apperror.ErrGameFinished
		}

		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if !game.IsFinished() && game.IsWithBot() {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame returns the player's game, starting a new bot game when the
// player has none or the old one has expired.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	if player.GameID != "" {
		existingGame, err := that.getGameByID(ctx, player.GameID)
		if err == nil {
			return existingGame, nil
		}

		if !errors.Is(err, repository.ErrGameNotFound) {
			return nil, fmt.Errorf("failed get game: %w", err)
		}

		that.logger.Info("stored game expired, starting a new one", "playerID", player.ID, "gameID", player.GameID)
	}

	newGame, err := that.createGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	return newGame, nil
}

// GetGame returns the game the player is in.
func (that *GameManager) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	newGame := entity.NewGame(pkg.GenerateGameID(), entity.WithBotType)

	playerMark, botMark := that.marks(newGame)

	player.GameID = newGame.ID
	player.Mark = playerMark

	newGame.Players = []*entity.Player{
		player,
		entity.NewBotPlayer(newGame.ID, botMark),
	}
	newGame.Status = entity.StatusOngoing

	if botMark == engine.X {
		if err := that.bot.MakeTurn(newGame); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return newGame, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// deleteGame drops a finished game and detaches its human player.
func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		detached := *player
		detached.Mark = engine.Empty
		detached.GameID = ""

		if err := that.playerRepo.CreateOrUpdate(ctx, &detached); err != nil {
			log.Error("failed to update player", "playerID", player.ID, "error", err)
		}
	}

	log.Info("game deleted", "winner", game.Winner)
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: pkg.GenerateNewSessionID(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
