package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

func TestRender(t *testing.T) {
	board := engine.Board{
		{x, e, o},
		{e, x, e},
		{o, e, e},
	}

	expected := "X | - | O\n" +
		"- | X | -\n" +
		"O | - | -\n" +
		"\n"

	assert.Equal(t, expected, Render(board))
}
