package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestInsertGet(t *testing.T) {
	a := openTest(t)

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := &Game{
		Started:   started,
		Finished:  started.Add(5 * time.Minute),
		White:     "alice",
		Black:     "bob",
		StartFEN:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		FinalFEN:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		FinalHash: HashKey(0x00ff00ff00ff00ff),
		Moves:     "e2e4 e7e5",
		Plies:     2,
	}

	id, err := a.Insert(g)
	require.NoError(t, err)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, ResultUnknown, g.Result)

	got, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.White)
	assert.Equal(t, "bob", got.Black)
	assert.Equal(t, g.FinalFEN, got.FinalFEN)
	assert.Equal(t, "00ff00ff00ff00ff", got.FinalHash)
	assert.Equal(t, []string{"e2e4", "e7e5"}, got.MoveList())
	assert.Equal(t, 2, got.Plies)
	assert.True(t, got.Started.Equal(started), "started = %v", got.Started)
}

func TestGetMissing(t *testing.T) {
	a := openTest(t)

	_, err := a.Get(42)
	assert.True(t, errors.Is(err, ErrNotFound), "err = %v", err)
}

func TestRecentAndCount(t *testing.T) {
	a := openTest(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := a.Insert(&Game{
			Finished: base.Add(time.Duration(i) * time.Hour),
			StartFEN: "start",
			FinalFEN: "final",
			Plies:    i,
		})
		require.NoError(t, err)
	}

	n, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	games, err := a.Recent(3)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, []int{4, 3, 2}, []int{games[0].Plies, games[1].Plies, games[2].Plies})
}

func TestByPosition(t *testing.T) {
	a := openTest(t)

	for _, h := range []uint64{1, 2, 1} {
		_, err := a.Insert(&Game{StartFEN: "s", FinalFEN: "f", FinalHash: HashKey(h)})
		require.NoError(t, err)
	}

	games, err := a.ByPosition(HashKey(1))
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = a.ByPosition(HashKey(3))
	require.NoError(t, err)
	assert.Empty(t, games)
}
