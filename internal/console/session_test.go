package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// every cell in row-major order; occupied ones are rejected and the next line is read
const allCells = "0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSession_Play(t *testing.T) {
	t.Run("Human opens as X against the bot", func(t *testing.T) {
		// Given: a session where the bot plays O
		var out bytes.Buffer
		session := New(newLogger(), strings.NewReader(allCells), &out, engine.O)

		// When: playing the game out
		result, err := session.Play(context.Background())

		// Then: the game ends and the outcome is printed last
		require.NoError(t, err)
		assert.True(t, result.Terminal())

		output := out.String()
		assert.True(t, strings.HasPrefix(output, "player turn\n"))
		assert.Contains(t, output, "bot turn\n")
		assert.True(t, strings.HasSuffix(output, tictactoe.Outcome(result)+"\n"))
	})

	t.Run("Bot opens as X", func(t *testing.T) {
		var out bytes.Buffer
		session := New(newLogger(), strings.NewReader(allCells), &out, engine.X)

		result, err := session.Play(context.Background())

		require.NoError(t, err)
		assert.True(t, result.Terminal())
		assert.True(t, strings.HasPrefix(out.String(), "bot turn\n"))
	})

	t.Run("Invalid input is reported and asked again", func(t *testing.T) {
		var out bytes.Buffer
		input := "hello\n9 9\n" + allCells
		session := New(newLogger(), strings.NewReader(input), &out, engine.O)

		_, err := session.Play(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "invalid move")
		assert.Contains(t, out.String(), "invalid cell index")
	})

	t.Run("End of input stops the game", func(t *testing.T) {
		var out bytes.Buffer
		session := New(newLogger(), strings.NewReader(""), &out, engine.O)

		_, err := session.Play(context.Background())

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Equal(t, "player turn\n", out.String())
	})

	t.Run("Canceled context stops before the first ply", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		session := New(newLogger(), strings.NewReader(allCells), &out, engine.O)

		_, err := session.Play(ctx)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}

func TestNew_SpinnerFollowsOutput(t *testing.T) {
	t.Run("Buffer output", func(t *testing.T) {
		// Given: output redirected away from the terminal
		var out bytes.Buffer

		// When: creating a session
		session := New(newLogger(), strings.NewReader(""), &out, engine.X)

		// Then: the spinner targets the same writer and stays off
		assert.Same(t, &out, session.spinner.Writer)
		assert.False(t, session.spinner.Enabled())
	})

	t.Run("File output", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })

		session := New(newLogger(), strings.NewReader(""), f, engine.X)

		assert.Same(t, f, session.spinner.WriterFile)
		assert.Same(t, f, session.spinner.Writer)
	})
}
