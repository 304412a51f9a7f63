package game

import "github.com/hailam/chesstrack/internal/board"

// InvalidMoveReason represents why a move was rejected.
type InvalidMoveReason int

const (
	ReasonNone InvalidMoveReason = iota
	ReasonNoPiece
	ReasonNotYourTurn
	ReasonBlockedByOwnPiece
	ReasonInvalidPieceMovement
)

func (r InvalidMoveReason) String() string {
	switch r {
	case ReasonNone:
		return "move available"
	case ReasonNoPiece:
		return "no piece on that square"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonBlockedByOwnPiece:
		return "blocked by own piece"
	case ReasonInvalidPieceMovement:
		return "piece cannot move there"
	default:
		return "unknown"
	}
}

// Explain tells why from -> to would be rejected, ReasonNone when it is available.
func (s *Session) Explain(from, to board.Square) InvalidMoveReason {
	piece := s.board.PieceAt(from)
	if piece.IsNone() {
		return ReasonNoPiece
	}
	if piece.Color != s.board.Turn() {
		return ReasonNotYourTurn
	}

	dest := s.board.PieceAt(to)
	if !dest.IsNone() && dest.Color == piece.Color && s.castleTarget(from, to) == to {
		return ReasonBlockedByOwnPiece
	}

	to = s.castleTarget(from, to)
	for _, m := range s.board.MovesFor(piece.Color) {
		if m.From == from && m.To == to {
			return ReasonNone
		}
	}
	return ReasonInvalidPieceMovement
}
