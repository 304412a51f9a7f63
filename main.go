// ChessTrack - a chess move tracker built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/storage"
	"github.com/hailam/chesstrack/internal/ui"
)

var (
	fen         = flag.String("fen", "", "start new games from this position")
	dataDir     = flag.String("data", "", "preferences and autosave directory (default: per-user data dir)")
	archivePath = flag.String("archive", "", "game archive database (default: in the data dir)")
	resume      = flag.Bool("resume", true, "resume the autosaved game")
)

func main() {
	flag.Parse()

	opts := ui.Options{StartFEN: *fen, Resume: *resume}

	store, err := openStorage()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v", err)
	} else {
		defer store.Close()
		opts.Storage = store
	}

	arch, err := openArchive()
	if err != nil {
		log.Printf("Warning: Failed to open archive: %v", err)
	} else {
		defer arch.Close()
		opts.Archive = arch
	}

	game := ui.NewGame(opts)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessTrack")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}

func openStorage() (*storage.Storage, error) {
	if *dataDir != "" {
		return storage.Open(*dataDir)
	}
	return storage.OpenDefault()
}

func openArchive() (*archive.Archive, error) {
	path := *archivePath
	if path == "" {
		var err error
		if path, err = storage.GetArchivePath(); err != nil {
			return nil, err
		}
	}
	return archive.Open(path)
}
