package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const spinnerCharSet = 14

// Session is a single game between the bot and a human on a text stream.
type Session struct {
	logger *slog.Logger

	in      *bufio.Scanner
	out     io.Writer
	botMark engine.Mark
	spinner *spinner.Spinner
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, botMark engine.Mark) *Session {
	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)
	s.Suffix = " bot is thinking"
	s.Writer = out
	if f, ok := out.(*os.File); ok {
		s.WriterFile = f
	} else {
		s.Disable()
	}

	return &Session{
		logger:  logger.With("component", "console"),
		in:      bufio.NewScanner(in),
		out:     out,
		botMark: botMark,
		spinner: s,
	}
}

// Play runs the turn loop until the game ends and returns the final result.
// X always moves first.
func (that *Session) Play(ctx context.Context) (engine.Result, error) {
	game := entity.NewGame("console", "")
	game.Status = entity.StatusOngoing

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return engine.None, fmt.Errorf("game interrupted: %w", err)
		}

		if game.Turn == that.botMark {
			if err := that.botTurn(game); err != nil {
				return engine.None, err
			}
		} else {
			if err := that.humanTurn(game); err != nil {
				return engine.None, err
			}
		}

		that.printf("%s", tictactoe.Render(game.Board))
	}

	result := game.DetermineGameResult()
	that.printf("%s\n", tictactoe.Outcome(result))
	that.logger.Info("game over", "result", result.String())

	return result, nil
}

func (that *Session) botTurn(game *entity.Game) error {
	that.printf("bot turn\n")

	that.spinner.Start()
	started := time.Now()
	result, err := tictactoe.BotTurn(game)
	that.spinner.Stop()

	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "score", result.Score, "elapsed", time.Since(started))
	that.printf("%d\n", result.Score)

	return nil
}

// humanTurn asks until a legal move is entered.
func (that *Session) humanTurn(game *entity.Game) error {
	for {
		that.printf("player turn\n")

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return io.ErrUnexpectedEOF
		}

		row, col, err := tictactoe.ParseMove(that.in.Text())
		if err == nil {
			err = tictactoe.MakeTurn(game, game.Turn, row*engine.Size+col)
		}

		if err == nil {
			return nil
		}

		that.logger.Debug("rejected move", "input", that.in.Text(), "error", err)
		that.printf("%v\n", err)
	}
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
