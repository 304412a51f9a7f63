package board

import (
	"fmt"
	"log"
)

// promotionChoices lists the pieces a pawn may become, in the order offered to callers.
var promotionChoices = [4]PieceType{Queen, Rook, Bishop, Knight}

// MakeMove applies the move from -> to for the side to move. promotion is
// NoPieceType when no choice is given.
//
// A pawn reaching the last rank without a promotion returns *AmbiguousMoveError
// listing the four candidates. A promotion to Pawn or King is a caller bug and
// panics. On success the move is appended to history and the generated move lists
// are invalidated; the caller toggles the turn and regenerates.
func (b *Board) MakeMove(from, to Square, promotion PieceType) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %v%v", ErrMoveNotAvailable, from, to)
	}

	piece := b.PieceAt(from)
	if piece.IsNone() {
		return fmt.Errorf("%w: no piece on %v", ErrInvalidPiece, from)
	}
	if piece.Color != b.turn {
		return fmt.Errorf("%w: %s to move, %v holds %s", ErrInvalidTurn, b.turn, from, piece.Color)
	}

	m, err := b.resolve(from, to, promotion)
	if err != nil {
		return err
	}

	b.apply(m, piece)
	b.history = append(b.history, m)
	b.moves = [2][]Move{}
	return nil
}

// resolve finds the generated move for (from,to) and attaches the promotion choice.
func (b *Board) resolve(from, to Square, promotion PieceType) (Move, error) {
	var (
		m     Move
		found bool
	)
	for _, cand := range b.moves[b.turn.index()] {
		if cand.From == from && cand.To == to {
			m, found = cand, true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("%w: %v%v", ErrMoveNotAvailable, from, to)
	}

	if !m.Type.canPromote() || promotionRank(b.turn)&SquareBB(to) == 0 {
		return m, nil
	}

	if promotion == NoPieceType {
		candidates := make([]Move, 0, len(promotionChoices))
		for _, pt := range promotionChoices {
			c := m
			c.Type.Promotion = pt
			candidates = append(candidates, c)
		}
		return Move{}, &AmbiguousMoveError{Candidates: candidates}
	}

	switch promotion {
	case Queen, Rook, Bishop, Knight:
		m.Type.Promotion = promotion
		return m, nil
	default:
		log.Printf("Invalid piece to promote: %s, move: %v", promotion, m)
		panic(fmt.Sprintf("board: invalid promotion piece %s", promotion))
	}
}

// promotionRank returns the rank a pawn of color c promotes on.
func promotionRank(c Color) Bitboard {
	if c == White {
		return Rank8
	}
	return Rank1
}

// apply performs the board mutation for a resolved move.
func (b *Board) apply(m Move, piece Piece) {
	ci := piece.Color.index()

	switch m.Type.Kind {
	case PawnDoublePushKind:
		b.movePiece(m.From, m.To)

	case PawnPushKind:
		b.movePiece(m.From, m.To)
		b.promote(m)

	case PawnCaptureKind:
		b.capture(m.To, piece.Color)
		b.movePiece(m.From, m.To)
		b.promote(m)

	case PawnEnPassantKind:
		victimSq := m.Type.Captured.Square()
		victim := b.PieceAt(victimSq)
		if victim.Type != Pawn || victim.Color == piece.Color {
			panic(fmt.Sprintf("board: en passant %v finds %v on %v", m, victim, victimSq))
		}
		if !b.IsEmpty(m.To) {
			panic(fmt.Sprintf("board: en passant %v lands on occupied square", m))
		}
		b.removePiece(victimSq)
		b.movePiece(m.From, m.To)

	case QueenMoveKind, BishopMoveKind, KnightMoveKind:
		b.captureIfOccupied(m.To, piece.Color)
		b.movePiece(m.From, m.To)

	case KingMoveKind:
		b.captureIfOccupied(m.To, piece.Color)
		b.movePiece(m.From, m.To)
		b.castling[ci].Zero()

	case RookMoveKind:
		b.captureIfOccupied(m.To, piece.Color)
		b.movePiece(m.From, m.To)
		b.castling[ci].Clear(m.From)

	case CastleKingSideKind, CastleQueenSideKind:
		plan := castlePlanFor(piece.Color, m.Type)
		if piece.Type != King || m.From != plan.king {
			panic(fmt.Sprintf("board: castle %v without king on %v", m, plan.king))
		}
		b.movePiece(m.From, m.To)
		b.movePiece(plan.rook, plan.rookTo)
		b.castling[ci].Zero()

	default:
		panic(fmt.Sprintf("board: cannot apply move type %v", m.Type))
	}
}

// capture removes the enemy piece on sq. Capturing nothing, or a friendly piece,
// means generation and application disagree.
func (b *Board) capture(sq Square, mover Color) {
	target := b.PieceAt(sq)
	if target.IsNone() || target.Color == mover {
		panic(fmt.Sprintf("board: capture on %v finds %v", sq, target))
	}
	b.removePiece(sq)
	if target.Type == Rook {
		b.castling[target.Color.index()].Clear(sq)
	}
}

func (b *Board) captureIfOccupied(sq Square, mover Color) {
	if !b.IsEmpty(sq) {
		b.capture(sq, mover)
	}
}

// promote swaps the pawn that just arrived on m.To for the chosen piece.
func (b *Board) promote(m Move) {
	if m.Type.Promotion == NoPieceType {
		return
	}
	pawn := b.removePiece(m.To)
	b.setPiece(NewPiece(pawn.Color, m.Type.Promotion), m.To)
}
