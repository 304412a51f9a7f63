// Package game drives a board through user requests: selection, move
// attempts, promotion choices and the running move log. Every front end
// (GUI, CLI REPL, session resume) goes through a Session.
package game

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/storage"
)

var (
	// ErrNoPendingPromotion is returned by Promote when no promotion waits for a choice.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrInvalidPromotion is returned by Promote for a piece that is not among the candidates.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrTurnMismatch is returned by Resume when the replayed side to move differs from the saved one.
	ErrTurnMismatch = errors.New("side to move does not match the saved session")
)

// castleByRook maps a rook home square to the king destination of the matching castle,
// so dropping the king on its own rook castles.
var castleByRook = map[board.Square]board.Square{
	board.H1: board.G1,
	board.A1: board.C1,
	board.H8: board.G8,
	board.A8: board.C8,
}

// Session owns one board and the user-facing state around it.
type Session struct {
	board    *board.Board
	startFEN string
	started  time.Time

	selected board.Square
	targets  []board.Square

	// Candidates of an ambiguous promotion awaiting Promote.
	pending []board.Move

	log []string
}

// New starts a session on b. The current position becomes the start position;
// moves already in b's history are not part of the log.
func New(b *board.Board) *Session {
	b.GenerateMoves()
	return &Session{
		board:    b,
		startFEN: b.FEN(),
		started:  time.Now(),
		selected: board.NoSquare,
	}
}

// NewFromFEN starts a session on a fresh board loaded from fen.
func NewFromFEN(fen string) (*Session, error) {
	b := board.New()
	if err := b.LoadFEN(fen); err != nil {
		return nil, err
	}
	return New(b), nil
}

// Replay rebuilds a session by applying moves in coordinate notation to startFEN.
func Replay(startFEN string, moves []string) (*Session, error) {
	s, err := NewFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	for i, mv := range moves {
		from, to, promo, err := board.ParseMove(mv)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := s.apply(from, to, promo); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, mv, err)
		}
	}
	return s, nil
}

// Board returns the underlying board. Callers must not apply moves to it directly.
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Turn() board.Color {
	return s.board.Turn()
}

func (s *Session) StartFEN() string {
	return s.startFEN
}

func (s *Session) Started() time.Time {
	return s.started
}

// Log returns the applied moves in coordinate notation.
func (s *Session) Log() []string {
	out := make([]string, len(s.log))
	copy(out, s.log)
	return out
}

func (s *Session) LastMove() (board.Move, bool) {
	return s.board.LastMove()
}

// Select selects sq when it holds a piece of the side to move.
// Any other square clears the selection and returns false.
func (s *Session) Select(sq board.Square) bool {
	p := s.board.PieceAt(sq)
	if p.IsNone() || p.Color != s.board.Turn() {
		s.ClearSelection()
		return false
	}

	s.selected = sq
	s.targets = s.targets[:0]
	seen := make(map[board.Square]bool)
	for _, m := range s.board.MovesFor(p.Color) {
		if m.From == sq && !seen[m.To] {
			seen[m.To] = true
			s.targets = append(s.targets, m.To)
		}
	}
	return true
}

// Selected returns the selected square, NoSquare when none.
func (s *Session) Selected() board.Square {
	return s.selected
}

func (s *Session) ClearSelection() {
	s.selected = board.NoSquare
	s.targets = nil
}

// Targets returns the destinations available from the selection.
func (s *Session) Targets() []board.Square {
	out := make([]board.Square, len(s.targets))
	copy(out, s.targets)
	return out
}

// IsTarget reports whether sq is a destination of the selection.
func (s *Session) IsTarget(sq board.Square) bool {
	for _, t := range s.targets {
		if t == sq {
			return true
		}
	}
	return false
}

// Move requests from -> to for the side to move. A pawn reaching the last rank
// returns *board.AmbiguousMoveError and the candidates stay pending until
// Promote or CancelPromotion. A new request drops any pending promotion.
func (s *Session) Move(from, to board.Square) error {
	s.pending = nil
	return s.apply(from, s.castleTarget(from, to), board.NoPieceType)
}

// MoveString applies a move given in coordinate notation, including the promotion piece.
func (s *Session) MoveString(mv string) error {
	from, to, promo, err := board.ParseMove(mv)
	if err != nil {
		return err
	}
	s.pending = nil
	return s.apply(from, s.castleTarget(from, to), promo)
}

// PendingPromotion returns the candidates of an unresolved promotion.
func (s *Session) PendingPromotion() ([]board.Move, bool) {
	if len(s.pending) == 0 {
		return nil, false
	}
	out := make([]board.Move, len(s.pending))
	copy(out, s.pending)
	return out, true
}

// Promote completes the pending promotion with pt.
func (s *Session) Promote(pt board.PieceType) error {
	if len(s.pending) == 0 {
		return ErrNoPendingPromotion
	}
	for _, c := range s.pending {
		if c.Type.Promotion == pt {
			return s.apply(c.From, c.To, pt)
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidPromotion, pt)
}

func (s *Session) CancelPromotion() {
	s.pending = nil
}

// apply hands the request to the board and, on success, toggles the turn,
// regenerates and records the move.
func (s *Session) apply(from, to board.Square, promo board.PieceType) error {
	err := s.board.MakeMove(from, to, promo)

	var amb *board.AmbiguousMoveError
	if errors.As(err, &amb) {
		s.pending = amb.Candidates
		log.Printf("[MOVE] %v%v waits for a promotion choice", from, to)
		return err
	}
	if err != nil {
		return err
	}

	last, _ := s.board.LastMove()
	s.log = append(s.log, last.String())
	s.board.ToggleTurn()
	s.board.GenerateMoves()
	s.pending = nil
	s.ClearSelection()

	log.Printf("[MOVE] %v %v, %s to move", last, last.Type, s.board.Turn())
	return nil
}

// castleTarget turns king-onto-own-rook into the matching castling destination.
func (s *Session) castleTarget(from, to board.Square) board.Square {
	dest, ok := castleByRook[to]
	if !ok {
		return to
	}
	p := s.board.PieceAt(from)
	if p.Type != board.King || s.board.PieceAt(to) != board.NewPiece(p.Color, board.Rook) {
		return to
	}
	for _, m := range s.board.MovesFor(p.Color) {
		if m.From == from && m.To == dest && m.Type.IsCastle() {
			return dest
		}
	}
	return to
}

// Snapshot captures what is needed to resume the session later.
func (s *Session) Snapshot() *storage.SavedSession {
	return &storage.SavedSession{
		StartFEN: s.startFEN,
		Moves:    s.Log(),
		Turn:     turnField(s.board.Turn()),
		Started:  s.started,
	}
}

func turnField(c board.Color) string {
	if c == board.Black {
		return "b"
	}
	return "w"
}

// Resume replays an autosaved session. The original start time is kept. A saved
// side to move that the replay does not reach returns ErrTurnMismatch.
func Resume(saved *storage.SavedSession) (*Session, error) {
	s, err := Replay(saved.StartFEN, saved.Moves)
	if err != nil {
		return nil, err
	}
	if got := turnField(s.board.Turn()); saved.Turn != "" && saved.Turn != got {
		return nil, fmt.Errorf("%w: saved %q, replayed %q", ErrTurnMismatch, saved.Turn, got)
	}
	if !saved.Started.IsZero() {
		s.started = saved.Started
	}
	return s, nil
}

// Summary condenses the session for the tracking statistics.
func (s *Session) Summary() storage.SessionSummary {
	sum := storage.SessionSummary{
		Plies:    len(s.log),
		Duration: time.Since(s.started),
	}
	for _, m := range s.board.History() {
		sum.Kinds = append(sum.Kinds, m.Type.Kind.String())
		if m.Type.Promotion != board.NoPieceType {
			sum.Promotions++
		}
	}
	return sum
}

// Record builds the archive row for this session.
func (s *Session) Record(white, black string) *archive.Game {
	return &archive.Game{
		Started:   s.started,
		Finished:  time.Now(),
		White:     white,
		Black:     black,
		StartFEN:  s.startFEN,
		FinalFEN:  s.board.FEN(),
		FinalHash: archive.HashKey(s.board.Hash()),
		Moves:     strings.Join(s.log, " "),
		Plies:     len(s.log),
		Result:    archive.ResultUnknown,
	}
}
