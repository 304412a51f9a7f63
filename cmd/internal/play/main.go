package play

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
	"github.com/hailam/chesstrack/internal/storage"
)

type Command struct {
	fen     string
	data    string
	archive string
	resume  bool
	white   string
	black   string
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Track a game from the terminal" }
func (*Command) Usage() string {
	return `play [options]

Reads coordinate moves (e2e4, e7e8q) and commands from standard input:
  moves     list the moves available to the side to move
  d         print the board
  dump      print the raw bitboards
  fen       print the current FEN
  history   print the moves played so far
  new       archive this game and start over
  quit      archive this game and exit
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.fen, "fen", board.StartFEN, "start from this position")
	flags.StringVar(&c.data, "data", "", "preferences and autosave directory (default: per-user data dir)")
	flags.StringVar(&c.archive, "archive", "", "game archive database (default: in the data dir)")
	flags.BoolVar(&c.resume, "resume", false, "resume the autosaved game")
	flags.StringVar(&c.white, "white", "", "name of the white player (default: saved username)")
	flags.StringVar(&c.black, "black", "", "name of the black player (default: saved username)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}

	tracker := &game.Tracker{}
	store, err := c.openStorage()
	if err != nil {
		log.Printf("[STORAGE] autosave disabled: %v", err)
	} else {
		defer store.Close()
		tracker.Store = store
	}
	arch, err := c.openArchive()
	if err != nil {
		log.Printf("[ARCHIVE] archive disabled: %v", err)
	} else {
		defer arch.Close()
		tracker.Archive = arch
	}

	r, err := newREPL(tracker, c.fen, c.resume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		return subcommands.ExitFailure
	}
	r.white, r.black = c.players(store)

	if err := r.run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) openStorage() (*storage.Storage, error) {
	if c.data != "" {
		return storage.Open(c.data)
	}
	return storage.OpenDefault()
}

func (c *Command) openArchive() (*archive.Archive, error) {
	path := c.archive
	if path == "" {
		var err error
		if path, err = storage.GetArchivePath(); err != nil {
			return nil, err
		}
	}
	return archive.Open(path)
}

// players falls back to the saved username for unnamed sides.
func (c *Command) players(store *storage.Storage) (white, black string) {
	name := storage.DefaultPreferences().Username
	if store != nil {
		if prefs, err := store.LoadPreferences(); err == nil {
			name = prefs.Username
		}
	}
	white, black = c.white, c.black
	if white == "" {
		white = name
	}
	if black == "" {
		black = name
	}
	return white, black
}
