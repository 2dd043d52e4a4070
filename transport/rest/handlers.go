package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	CreatePlayer(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	NewGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type response struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func NewHandlers(logger *slog.Logger, game gameUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.game.GetOrCreatePlayer(r.Context(), "")
	if err != nil {
		that.writeError(w, "CreatePlayer", err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Player: player})
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	writeJSON(w, http.StatusOK, response{Game: game.Masked()})
}

func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetOrCreateGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "NewGame", err)
		return
	}

	writeJSON(w, http.StatusOK, response{Game: game.Masked()})
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid payload"})
		return
	}

	game, err := that.game.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if errors.Is(err, apperror.ErrGameFinished) && game != nil {
		writeJSON(w, http.StatusOK, response{Game: game.Masked()})
		return
	}

	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, response{Game: game.Masked()})
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	writeJSON(w, status, response{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrNoActiveGame),
		errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
