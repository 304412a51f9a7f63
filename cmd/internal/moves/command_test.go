package moves

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesstrack/internal/board"
)

func TestListStartPosition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, list(&buf, board.StartFEN, board.NoSquare, false))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, board.StartFEN+"\n"))
	assert.Contains(t, out, "e2e4")
	assert.Contains(t, out, "g1f3")
	assert.NotContains(t, out, "e7e5")
	assert.True(t, strings.HasSuffix(out, "20 moves\n"), out)
}

func TestListAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, list(&buf, board.StartFEN, board.NoSquare, true))
	assert.Contains(t, buf.String(), "e7e5")
	assert.True(t, strings.HasSuffix(buf.String(), "40 moves\n"))
}

func TestListFrom(t *testing.T) {
	g1, err := board.ParseSquare("g1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, list(&buf, board.StartFEN, g1, false))
	out := buf.String()
	assert.Contains(t, out, "g1f3")
	assert.Contains(t, out, "g1h3")
	assert.NotContains(t, out, "e2e4")
	assert.True(t, strings.HasSuffix(out, "2 moves\n"))
}

func TestListBadFEN(t *testing.T) {
	var buf bytes.Buffer
	err := list(&buf, "not a fen", board.NoSquare, false)
	assert.ErrorIs(t, err, board.ErrInvalidFEN)
	assert.Zero(t, buf.Len())
}
