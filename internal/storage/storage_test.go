package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if prefs.Flipped || prefs.ShowControl {
			t.Errorf("Expected unflipped board without control overlay")
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
		if prefs.StartFEN != "" {
			t.Errorf("Expected no default start position, got %q", prefs.StartFEN)
		}
	})

	t.Run("NewTrackingStats", func(t *testing.T) {
		stats := NewTrackingStats()
		if stats.Sessions != 0 {
			t.Errorf("Expected 0 sessions")
		}
		if stats.AverageLength() != 0 {
			t.Errorf("Expected 0 average length")
		}
	})

	t.Run("AverageLength", func(t *testing.T) {
		stats := &TrackingStats{Sessions: 4, MovesPlayed: 90}
		if got := stats.AverageLength(); got != 22.5 {
			t.Errorf("Expected 22.5 plies per session, got %.2f", got)
		}
	})
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTest(t)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "Player", prefs.Username)

	prefs.Username = "tracker"
	prefs.Flipped = true
	prefs.SoundEnabled = false
	prefs.StartFEN = "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	require.NoError(t, s.SavePreferences(prefs))

	got, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "tracker", got.Username)
	assert.True(t, got.Flipped)
	assert.False(t, got.ShowControl)
	assert.False(t, got.SoundEnabled)
	assert.Equal(t, prefs.StartFEN, got.StartFEN)
}

func TestFirstLaunch(t *testing.T) {
	s := openTest(t)

	first, err := s.IsFirstLaunch()
	require.NoError(t, err)
	assert.True(t, first)

	require.NoError(t, s.MarkFirstLaunchComplete())

	first, err = s.IsFirstLaunch()
	require.NoError(t, err)
	assert.False(t, first)
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTest(t)

	_, err := s.LoadSession()
	assert.True(t, errors.Is(err, ErrNoSession), "err = %v", err)

	saved := &SavedSession{
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Moves:    []string{"e2e4", "c7c5"},
		Turn:     "w",
		Started:  time.Now().Add(-time.Minute),
	}
	require.NoError(t, s.SaveSession(saved))

	got, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, saved.StartFEN, got.StartFEN)
	assert.Equal(t, saved.Moves, got.Moves)
	assert.Equal(t, "w", got.Turn)
	assert.False(t, got.Saved.IsZero())

	require.NoError(t, s.ClearSession())
	_, err = s.LoadSession()
	assert.True(t, errors.Is(err, ErrNoSession), "err = %v", err)
}

func TestRecordSession(t *testing.T) {
	s := openTest(t)

	require.NoError(t, s.RecordSession(SessionSummary{
		Plies:      3,
		Kinds:      []string{"PawnDoublePush", "PawnDoublePush", "KnightMove"},
		Promotions: 0,
		Duration:   time.Minute,
	}))
	require.NoError(t, s.RecordSession(SessionSummary{
		Plies:      1,
		Kinds:      []string{"KnightMove"},
		Promotions: 1,
		Duration:   time.Second,
	}))

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 4, stats.MovesPlayed)
	assert.Equal(t, 3, stats.LongestGame)
	assert.Equal(t, 1, stats.Promotions)
	assert.Equal(t, map[string]int{"PawnDoublePush": 2, "KnightMove": 2}, stats.MovesByKind)
	assert.Equal(t, time.Minute+time.Second, stats.TotalPlayTime)
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.MarkFirstLaunchComplete())
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	first, err := s.IsFirstLaunch()
	require.NoError(t, err)
	assert.False(t, first, "first launch flag not persisted")
}

func TestDataPaths(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	dataDir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, appName, filepath.Base(dataDir))
	assert.DirExists(t, dataDir)

	archive, err := GetArchivePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "archive.db"), archive)

	db, err := GetDatabaseDir()
	require.NoError(t, err)
	assert.DirExists(t, db)
}

func TestDataPathsOverride(t *testing.T) {
	home := filepath.Join(t.TempDir(), "tracker")
	t.Setenv(HomeEnv, home)

	dataDir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, home, dataDir)
	assert.DirExists(t, home)
}
