// Package archive keeps finished and abandoned tracking sessions in SQLite.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // archive assumes sqlite
)

// ResultUnknown marks a game whose outcome the tracker cannot decide.
const ResultUnknown = "*"

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("game not found")

// Game is one archived session.
type Game struct {
	ID        int64     `db:"id"`
	Started   time.Time `db:"started"`
	Finished  time.Time `db:"finished"`
	White     string    `db:"white"`
	Black     string    `db:"black"`
	StartFEN  string    `db:"start_fen"`
	FinalFEN  string    `db:"final_fen"`
	FinalHash string    `db:"final_hash"`
	Moves     string    `db:"moves"`
	Plies     int       `db:"plies"`
	Result    string    `db:"result"`
}

// MoveList splits the stored moves back into coordinate notation.
func (g *Game) MoveList() []string {
	return strings.Fields(g.Moves)
}

// HashKey renders a position hash the way it is stored.
func HashKey(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

type Archive struct {
	db *sqlx.DB
}

// Open opens the archive at path, creating the schema when needed.
// ":memory:" gives a private in-memory archive.
func Open(path string) (*Archive, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	if _, err := db.Exec(createHashIndex); err != nil {
		db.Close()
		return nil, fmt.Errorf("create hash index: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Insert stores g and returns its id; g.ID is updated as well.
func (a *Archive) Insert(g *Game) (int64, error) {
	if g.Result == "" {
		g.Result = ResultUnknown
	}
	res, err := a.db.NamedExec(insertGame, g)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	g.ID = id
	return id, nil
}

func (a *Archive) Get(id int64) (*Game, error) {
	var g Game
	err := a.db.Get(&g, selectGame, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Recent returns up to limit games, most recently finished first.
func (a *Archive) Recent(limit int) ([]Game, error) {
	var games []Game
	if err := a.db.Select(&games, selectRecent, limit); err != nil {
		return nil, fmt.Errorf("select recent: %w", err)
	}
	return games, nil
}

// ByPosition returns the games whose final position has the given hash key.
func (a *Archive) ByPosition(key string) ([]Game, error) {
	var games []Game
	if err := a.db.Select(&games, selectByHash, key); err != nil {
		return nil, fmt.Errorf("select by position: %w", err)
	}
	return games, nil
}

func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.Get(&n, countGames)
	return n, err
}
