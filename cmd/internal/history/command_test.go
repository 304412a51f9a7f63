package history

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
)

func TestList(t *testing.T) {
	a, err := archive.Open(":memory:")
	require.NoError(t, err)
	defer a.Close()

	now := time.Now()
	for i, players := range [][2]string{{"alice", "bob"}, {"carol", "dave"}, {"erin", "frank"}} {
		_, err := a.Insert(&archive.Game{
			Started:  now.Add(-time.Hour),
			Finished: now.Add(time.Duration(i) * time.Minute),
			White:    players[0],
			Black:    players[1],
			StartFEN: board.StartFEN,
			FinalFEN: board.StartFEN,
			Moves:    "e2e4",
			Plies:    1,
			Result:   archive.ResultUnknown,
		})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, list(&buf, a, 2))
	out := buf.String()
	assert.Contains(t, out, "erin")
	assert.Contains(t, out, "carol")
	assert.NotContains(t, out, "alice")
	assert.Contains(t, out, "2 of 3 games")
}

func TestListEmpty(t *testing.T) {
	a, err := archive.Open(":memory:")
	require.NoError(t, err)
	defer a.Close()

	var buf bytes.Buffer
	require.NoError(t, list(&buf, a, 10))
	assert.Contains(t, buf.String(), "0 of 0 games")
}
