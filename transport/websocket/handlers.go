package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if err := unmarshalPayload(msg, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.game.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	if player.GameID != "" {
		return that.handleExistingGame(ctx, conn, msg, player)
	}

	if err = that.sendMessage(conn, msg.Action, Payload{Player: player}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

// handleExistingGame processes a player already in a game.
func (that *Server) handleExistingGame(ctx context.Context, conn *websocket.Conn, msg *Message, player *entity.Player) error {
	log := that.logger.With("method", "handleExistingGame")

	game, err := that.game.GetGame(ctx, player.ID)
	if err != nil {
		log.Warn("stored game is gone", "gameID", player.GameID, "error", err)
		return that.sendMessage(conn, msg.Action, Payload{Player: player})
	}

	return that.sendMessage(conn, msg.Action, Payload{
		Player: player,
		Game:   game.Masked(),
	})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload
	if err := unmarshalPayload(msg, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	game, err := that.game.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	return that.sendMessage(conn, msg.Action, Payload{
		Player: game.HumanPlayer(),
		Game:   game.Masked(),
	})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload
	if err := unmarshalPayload(msg, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Cell is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.game.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrGameFinished) && game != nil {
		log.Info("Game finished", "gameID", game.ID, "winner", game.Winner)
		return that.sendMessage(conn, msg.Action, Payload{Game: game.Masked()})
	}

	if err != nil {
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game.Masked()})
}

func unmarshalPayload(msg *Message, payload *Payload) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
