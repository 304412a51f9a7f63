package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/storage"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	store, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a, err := archive.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return &Tracker{Store: store, Archive: a}
}

func TestTrackerAutosaveResume(t *testing.T) {
	tr := newTracker(t)

	_, err := tr.Resume()
	assert.True(t, errors.Is(err, storage.ErrNoSession), "err = %v", err)

	s, err := Replay(board.StartFEN, []string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, err)
	require.NoError(t, tr.Autosave(s))

	resumed, err := tr.Resume()
	require.NoError(t, err)
	assert.Equal(t, s.Log(), resumed.Log())
	assert.Equal(t, board.Black, resumed.Turn())

	// A session without moves clears the autosave.
	fresh, err := NewFromFEN(board.StartFEN)
	require.NoError(t, err)
	require.NoError(t, tr.Autosave(fresh))
	_, err = tr.Resume()
	assert.True(t, errors.Is(err, storage.ErrNoSession), "err = %v", err)
}

func TestTrackerFinish(t *testing.T) {
	tr := newTracker(t)

	s, err := Replay(board.StartFEN, []string{"d2d4", "d7d5"})
	require.NoError(t, err)
	require.NoError(t, tr.Autosave(s))

	id, err := tr.Finish(s, "alice", "bob")
	require.NoError(t, err)
	require.NotZero(t, id)

	g, err := tr.Archive.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2d4", "d7d5"}, g.MoveList())
	assert.Equal(t, "bob", g.Black)

	stats, err := tr.Store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 2, stats.MovesByKind["PawnDoublePush"])

	_, err = tr.Resume()
	assert.True(t, errors.Is(err, storage.ErrNoSession), "autosave kept after finish: %v", err)
}

func TestTrackerFinishEmpty(t *testing.T) {
	tr := newTracker(t)

	s, err := NewFromFEN(board.StartFEN)
	require.NoError(t, err)

	id, err := tr.Finish(s, "alice", "bob")
	require.NoError(t, err)
	assert.Zero(t, id)

	n, err := tr.Archive.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNilTracker(t *testing.T) {
	var tr *Tracker
	s, err := NewFromFEN(board.StartFEN)
	require.NoError(t, err)

	assert.NoError(t, tr.Autosave(s))
	id, err := tr.Finish(s, "", "")
	assert.NoError(t, err)
	assert.Zero(t, id)
}
