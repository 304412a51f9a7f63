package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	keySession     = "session"
)

// ErrNoSession is returned by LoadSession when nothing was autosaved.
var ErrNoSession = errors.New("no saved session")

// UserPreferences stores user settings
type UserPreferences struct {
	Username     string    `json:"username"`
	Flipped      bool      `json:"flipped"`
	ShowControl  bool      `json:"show_control"`
	SoundEnabled bool      `json:"sound_enabled"`
	StartFEN     string    `json:"start_fen"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:     "Player",
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// SavedSession is the autosaved in-progress session: enough to replay it.
type SavedSession struct {
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	Turn     string    `json:"turn"`
	Started  time.Time `json:"started"`
	Saved    time.Time `json:"saved"`
}

// TrackingStats accumulates counters over every finished session.
type TrackingStats struct {
	Sessions      int            `json:"sessions"`
	MovesPlayed   int            `json:"moves_played"`
	MovesByKind   map[string]int `json:"moves_by_kind"`
	Promotions    int            `json:"promotions"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestGame   int            `json:"longest_game"`
}

// NewTrackingStats returns empty statistics
func NewTrackingStats() *TrackingStats {
	return &TrackingStats{
		MovesByKind: make(map[string]int),
	}
}

// SessionSummary describes a finished session for RecordSession.
type SessionSummary struct {
	Plies      int
	Kinds      []string
	Promotions int
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenDefault opens the database under the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveSession overwrites the autosaved session.
func (s *Storage) SaveSession(sess *SavedSession) error {
	sess.Saved = time.Now()
	return s.put(keySession, sess)
}

// LoadSession returns the autosaved session, or ErrNoSession.
func (s *Storage) LoadSession() (*SavedSession, error) {
	sess := &SavedSession{}
	found, err := s.get(keySession, sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSession
	}
	return sess, nil
}

// ClearSession forgets the autosaved session.
func (s *Storage) ClearSession() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keySession))
	})
}

// SaveStats saves tracking statistics
func (s *Storage) SaveStats(stats *TrackingStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads tracking statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*TrackingStats, error) {
	stats := NewTrackingStats()
	_, err := s.get(keyStats, stats)
	return stats, err
}

// RecordSession folds a finished session into the statistics.
func (s *Storage) RecordSession(sum SessionSummary) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	if stats.MovesByKind == nil {
		stats.MovesByKind = make(map[string]int)
	}

	stats.Sessions++
	stats.MovesPlayed += sum.Plies
	stats.Promotions += sum.Promotions
	stats.TotalPlayTime += sum.Duration
	for _, k := range sum.Kinds {
		stats.MovesByKind[k]++
	}
	if sum.Plies > stats.LongestGame {
		stats.LongestGame = sum.Plies
	}

	return s.SaveStats(stats)
}

// AverageLength returns the mean number of plies per recorded session.
func (s *TrackingStats) AverageLength() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.MovesPlayed) / float64(s.Sessions)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v and reports whether the key existed.
func (s *Storage) get(key string, v any) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
