package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
	"github.com/hailam/chesstrack/internal/storage"
)

type repl struct {
	tracker  *game.Tracker
	session  *game.Session
	startFEN string

	white, black string
}

// newREPL starts on fen, or on the autosaved game when resume is set and one exists.
func newREPL(tracker *game.Tracker, fen string, resume bool) (*repl, error) {
	r := &repl{tracker: tracker, startFEN: fen}
	if resume {
		s, err := tracker.Resume()
		switch {
		case err == nil:
			r.session = s
			r.startFEN = s.StartFEN()
			return r, nil
		case errors.Is(err, storage.ErrNoSession):
			log.Printf("[SESSION] nothing to resume, starting a new game")
		default:
			return nil, err
		}
	}
	s, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	r.session = s
	return r, nil
}

// run reads commands until quit or end of input. The game is archived either way.
func (r *repl) run(in io.Reader, out io.Writer) error {
	r.prompt(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			r.prompt(out)
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "quit", "exit":
			return r.finish(out)
		case "new":
			if err := r.finish(out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			s, err := game.NewFromFEN(r.startFEN)
			if err != nil {
				return err
			}
			r.session = s
			fmt.Fprintln(out, "new game")
		case "moves":
			r.listMoves(out)
		case "d":
			fmt.Fprint(out, r.session.Board())
		case "dump":
			r.session.Board().Dump(out)
		case "fen":
			fmt.Fprintln(out, r.session.Board().FEN())
		case "history":
			r.history(out)
		default:
			r.move(out, parts[0])
		}
		r.prompt(out)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return r.finish(out)
}

func (r *repl) prompt(out io.Writer) {
	if _, ok := r.session.PendingPromotion(); ok {
		fmt.Fprint(out, "promote to (q/r/b/n)> ")
		return
	}
	fmt.Fprintf(out, "%s> ", r.session.Turn())
}

// move applies a coordinate move, or a bare piece letter completing a pending promotion.
func (r *repl) move(out io.Writer, input string) {
	var err error
	if _, ok := r.session.PendingPromotion(); ok && len(input) == 1 {
		p := board.PieceFromChar(input[0])
		if p.IsNone() {
			fmt.Fprintf(out, "unknown piece %q\n", input)
			return
		}
		err = r.session.Promote(p.Type)
	} else {
		err = r.session.MoveString(input)
	}

	var amb *board.AmbiguousMoveError
	switch {
	case errors.As(err, &amb):
		names := make([]string, len(amb.Candidates))
		for i, m := range amb.Candidates {
			names[i] = m.String()
		}
		fmt.Fprintf(out, "promotion: %s\n", strings.Join(names, " "))
		return
	case errors.Is(err, game.ErrInvalidPromotion):
		fmt.Fprintf(out, "error: %v\n", err)
		return
	case err != nil:
		fmt.Fprintf(out, "illegal move %s: %s\n", input, r.explain(input, err))
		return
	}

	last, _ := r.session.LastMove()
	fmt.Fprintf(out, "%s %s\n", last, last.Type)
	if err := r.tracker.Autosave(r.session); err != nil {
		log.Printf("[SESSION] autosave failed: %v", err)
	}
}

// explain turns a rejected move into the reason shown to the user.
func (r *repl) explain(input string, err error) string {
	from, to, _, perr := board.ParseMove(input)
	if perr != nil {
		return err.Error()
	}
	if reason := r.session.Explain(from, to); reason != game.ReasonNone {
		return reason.String()
	}
	return err.Error()
}

func (r *repl) listMoves(out io.Writer) {
	b := r.session.Board()
	ms := b.MovesFor(b.Turn())
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	fmt.Fprintf(out, "%d: %s\n", len(ms), strings.Join(names, " "))
}

// history prints the moves in pairs and how many archived games reached this position.
func (r *repl) history(out io.Writer) {
	moves := r.session.Log()
	for i := 0; i < len(moves); i += 2 {
		if i+1 < len(moves) {
			fmt.Fprintf(out, "%d. %s %s\n", i/2+1, moves[i], moves[i+1])
		} else {
			fmt.Fprintf(out, "%d. %s\n", i/2+1, moves[i])
		}
	}
	if r.tracker == nil || r.tracker.Archive == nil {
		return
	}
	seen, err := r.tracker.Archive.ByPosition(archive.HashKey(r.session.Board().Hash()))
	if err != nil {
		log.Printf("[ARCHIVE] lookup failed: %v", err)
		return
	}
	if len(seen) > 0 {
		fmt.Fprintf(out, "position ended %d archived game(s)\n", len(seen))
	}
}

func (r *repl) finish(out io.Writer) error {
	id, err := r.tracker.Finish(r.session, r.white, r.black)
	if id != 0 {
		fmt.Fprintf(out, "archived game %d\n", id)
	}
	return err
}
