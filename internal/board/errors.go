package board

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the board. Use errors.Is to test for them.
var (
	// ErrInvalidPiece indicates the origin square holds no piece.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidTurn indicates the origin piece belongs to the side not to move.
	ErrInvalidTurn = errors.New("invalid turn")

	// ErrMoveNotAvailable indicates the (from,to) pair is not in the generated set.
	ErrMoveNotAvailable = errors.New("move not available")

	// ErrInvalidFEN indicates a malformed FEN field.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed square notation.
	ErrInvalidSquare = errors.New("invalid square")
)

// AmbiguousMoveError is returned when a (from,to) request matches several moves,
// which happens for pawns reaching the last rank without a promotion choice.
// Re-invoke MakeMove with one of the candidates' promotion pieces.
type AmbiguousMoveError struct {
	Candidates []Move
}

func (e *AmbiguousMoveError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, m := range e.Candidates {
		names[i] = m.String()
	}
	return fmt.Sprintf("ambiguous move: choose one of %s", strings.Join(names, ", "))
}
