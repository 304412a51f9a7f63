package board

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// StartPlacement is the piece placement of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// StartFEN is the FEN string for the starting position.
const StartFEN = StartPlacement + " w KQkq - 0 1"

// LoadPosition replaces the placement with a FEN piece-placement field and
// generates moves for both sides. Unknown characters are logged and skipped.
// Side to move and castling rights are left as they are.
func (b *Board) LoadPosition(placement string) {
	b.clearPlacement()

	idx := 63
	for _, c := range placement {
		switch {
		case c >= '1' && c <= '8':
			idx -= int(c - '0')
		case c == '/':
		default:
			p := PieceFromChar(byte(c))
			if c > 0x7f || p.IsNone() {
				log.Printf("Invalid FEN character: %q", c)
				continue
			}
			if idx < 0 {
				log.Printf("FEN placement overflows the board, dropping %q", c)
				continue
			}
			b.setPiece(p, Square(idx))
			idx--
		}
	}

	b.GenerateMoves()
}

// LoadFEN loads a full FEN string. The placement goes through LoadPosition;
// side to move and castling rights are applied when present. En passant and
// move counters are accepted and ignored: en passant follows from history only.
func (b *Board) LoadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidFEN)
	}

	turn := b.turn
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			turn = White
		case "b":
			turn = Black
		default:
			return fmt.Errorf("%w: invalid side to move: %s", ErrInvalidFEN, parts[1])
		}
	}

	rights := b.castling
	if len(parts) > 2 {
		var err error
		if rights, err = parseCastlingRights(parts[2]); err != nil {
			return err
		}
	}

	if len(parts) > 4 {
		for _, field := range parts[4:min(len(parts), 6)] {
			if _, err := strconv.Atoi(field); err != nil {
				return fmt.Errorf("%w: invalid move counter: %s", ErrInvalidFEN, field)
			}
		}
	}

	b.turn = turn
	b.castling = rights
	b.LoadPosition(parts[0])
	return nil
}

// parseCastlingRights maps the castling field onto rook home squares.
func parseCastlingRights(field string) ([2]Bitboard, error) {
	var rights [2]Bitboard
	if field == "-" {
		return rights, nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			rights[0].Set(H1)
		case 'Q':
			rights[0].Set(A1)
		case 'k':
			rights[1].Set(H8)
		case 'q':
			rights[1].Set(A8)
		default:
			return rights, fmt.Errorf("%w: invalid castling character: %c", ErrInvalidFEN, c)
		}
	}
	return rights, nil
}

// Placement returns the FEN piece-placement field of the position.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.PieceAt(SquareAt(7-col, rank))
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN returns placement, side to move and castling rights as a FEN string.
func (b *Board) FEN() string {
	side := "w"
	if b.turn == Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s %s - 0 1", b.Placement(), side, b.castlingField())
}

// castlingField renders the castling rights in FEN order.
func (b *Board) castlingField() string {
	s := ""
	if b.castling[0].IsSet(H1) {
		s += "K"
	}
	if b.castling[0].IsSet(A1) {
		s += "Q"
	}
	if b.castling[1].IsSet(H8) {
		s += "k"
	}
	if b.castling[1].IsSet(A8) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
