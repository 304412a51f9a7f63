package play

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
	"github.com/hailam/chesstrack/internal/storage"
)

func newTracker(t *testing.T) *game.Tracker {
	t.Helper()
	store, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a, err := archive.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return &game.Tracker{Store: store, Archive: a}
}

func runScript(t *testing.T, r *repl, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, r.run(strings.NewReader(script), &out))
	return out.String()
}

func TestREPLPlayAndQuit(t *testing.T) {
	tr := newTracker(t)
	r, err := newREPL(tr, board.StartFEN, false)
	require.NoError(t, err)
	r.white, r.black = "alice", "bob"

	out := runScript(t, r, "e2e4\ne7e5\nfen\nhistory\nquit\ne2e4\n")
	assert.Contains(t, out, "e2e4 PawnDoublePush")
	assert.Contains(t, out, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq")
	assert.Contains(t, out, "1. e2e4 e7e5")
	assert.Contains(t, out, "archived game 1")

	g, err := tr.Archive.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2e4", "e7e5"}, g.MoveList())
	assert.Equal(t, "alice", g.White)

	_, err = tr.Resume()
	assert.True(t, errors.Is(err, storage.ErrNoSession), "autosave kept after quit: %v", err)
}

func TestREPLRejectsMoves(t *testing.T) {
	r, err := newREPL(nil, board.StartFEN, false)
	require.NoError(t, err)

	out := runScript(t, r, "e7e5\ne2e5\ne3e4\nzz\n")
	assert.Contains(t, out, "illegal move e7e5: not your turn")
	assert.Contains(t, out, "illegal move e2e5: piece cannot move there")
	assert.Contains(t, out, "illegal move e3e4: no piece on that square")
	assert.Contains(t, out, "illegal move zz:")
	assert.Empty(t, r.session.Log())
}

func TestREPLPromotion(t *testing.T) {
	r, err := newREPL(nil, "k7/4P3/8/8/8/8/8/7K w - - 0 1", false)
	require.NoError(t, err)

	out := runScript(t, r, "e7e8\nk\nq\nfen\n")
	assert.Contains(t, out, "promotion: e7e8q e7e8r e7e8b e7e8n")
	assert.Contains(t, out, "promote to (q/r/b/n)> ")
	assert.Contains(t, out, "invalid promotion piece")
	assert.Contains(t, out, "k3Q3/8/8/8/8/8/8/7K b")
	assert.Equal(t, []string{"e7e8q"}, r.session.Log())
}

func TestREPLResume(t *testing.T) {
	tr := newTracker(t)
	s, err := game.Replay(board.StartFEN, []string{"d2d4", "d7d5"})
	require.NoError(t, err)
	require.NoError(t, tr.Autosave(s))

	r, err := newREPL(tr, board.StartFEN, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2d4", "d7d5"}, r.session.Log())

	out := runScript(t, r, "new\nmoves\n")
	assert.Contains(t, out, "archived game 1")
	assert.Contains(t, out, "new game")
	assert.Contains(t, out, "20: ")
	assert.Empty(t, r.session.Log())
}

func TestREPLResumeWithoutAutosave(t *testing.T) {
	r, err := newREPL(newTracker(t), board.StartFEN, true)
	require.NoError(t, err)
	assert.Equal(t, board.White, r.session.Turn())
}
