package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/storage"
)

// Tracker persists sessions: autosaves and statistics in storage, finished games in
// the archive. Either backend may be nil, and a nil Tracker persists nothing.
type Tracker struct {
	Store   *storage.Storage
	Archive *archive.Archive
}

// Autosave stores s so it can be resumed. A session without moves clears the autosave.
func (t *Tracker) Autosave(s *Session) error {
	if t == nil || t.Store == nil {
		return nil
	}
	if len(s.log) == 0 {
		return t.Store.ClearSession()
	}
	return t.Store.SaveSession(s.Snapshot())
}

// Resume replays the autosaved session. Without one the error wraps storage.ErrNoSession.
func (t *Tracker) Resume() (*Session, error) {
	if t == nil || t.Store == nil {
		return nil, storage.ErrNoSession
	}
	saved, err := t.Store.LoadSession()
	if err != nil {
		return nil, err
	}
	s, err := Resume(saved)
	if err != nil {
		return nil, fmt.Errorf("resume autosave: %w", err)
	}
	return s, nil
}

// Finish archives s when it has moves, adds it to the statistics and drops the
// autosave. It returns the archive id, 0 when nothing was archived.
func (t *Tracker) Finish(s *Session, white, black string) (int64, error) {
	if t == nil {
		return 0, nil
	}
	if len(s.log) == 0 {
		if t.Store != nil {
			return 0, t.Store.ClearSession()
		}
		return 0, nil
	}

	var (
		id   int64
		errs []error
	)
	if t.Archive != nil {
		var err error
		id, err = t.Archive.Insert(s.Record(white, black))
		if err != nil {
			errs = append(errs, fmt.Errorf("archive game: %w", err))
		} else {
			log.Printf("[ARCHIVE] game %d stored, %d plies", id, len(s.log))
		}
	}
	if t.Store != nil {
		if err := t.Store.RecordSession(s.Summary()); err != nil {
			errs = append(errs, fmt.Errorf("record stats: %w", err))
		}
		if err := t.Store.ClearSession(); err != nil {
			errs = append(errs, fmt.Errorf("clear autosave: %w", err))
		}
	}
	return id, errors.Join(errs...)
}
