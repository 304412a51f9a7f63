package board

import (
	"fmt"
	"io"
	"strings"
)

// Rook home squares still eligible for castling, per color.
const (
	whiteCastlingHome Bitboard = 0x0000000000000081 // h1, a1
	blackCastlingHome Bitboard = 0x8100000000000000 // h8, a8
)

// Board is the complete position state.
//
// The mailbox duplicates the occupancy bitboards for O(1) square lookup; every
// mutation goes through setPiece/removePiece/movePiece so the two never disagree.
type Board struct {
	// Occupancy bitboards, selected by bitboardIndex.
	pieces [12]Bitboard

	// Squares reached by each side's non-push, non-king moves. Gates castling only.
	control [2]Bitboard

	// Rook home squares that still permit castling.
	castling [2]Bitboard

	mailbox [64]uint16

	turn    Color
	history []Move

	// Last generated pseudo-legal moves per side; nil once a move invalidates them.
	moves [2][]Move
}

// New returns an empty board, White to move, with full castling rights.
func New() *Board {
	return &Board{
		turn:     White,
		castling: [2]Bitboard{whiteCastlingHome, blackCastlingHome},
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// ToggleTurn hands the move to the other side.
func (b *Board) ToggleTurn() {
	b.turn = b.turn.Other()
}

// PieceAt returns the piece on sq, NoPiece when empty.
func (b *Board) PieceAt(sq Square) Piece {
	return PieceFromCode(b.mailbox[sq])
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq).IsNone()
}

// Mailbox returns a copy of the 64 piece codes, index 0 = h1.
func (b *Board) Mailbox() []uint16 {
	out := make([]uint16, len(b.mailbox))
	copy(out, b.mailbox[:])
	return out
}

// Pieces returns the occupancy bitboard for a piece.
func (b *Board) Pieces(p Piece) Bitboard {
	return b.pieces[bitboardIndex(p)]
}

// Occupied returns every square holding a piece of color c.
func (b *Board) Occupied(c Color) Bitboard {
	var occ Bitboard
	for pt := Pawn; pt <= King; pt++ {
		occ |= b.pieces[bitboardIndex(NewPiece(c, pt))]
	}
	return occ
}

// Control returns the control bitboard of color c from the last generation.
func (b *Board) Control(c Color) Bitboard {
	return b.control[c.index()]
}

// CastlingRights returns the rook home squares from which c may still castle.
func (b *Board) CastlingRights(c Color) Bitboard {
	return b.castling[c.index()]
}

// SetCastlingRights overwrites the castling rights of c.
func (b *Board) SetCastlingRights(c Color, rights Bitboard) {
	b.castling[c.index()] = rights & homeRights(c)
}

// History returns the applied moves, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

// LastMove returns the most recent applied move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Moves returns both sides' last generated moves, White's first.
func (b *Board) Moves() []Move {
	out := make([]Move, 0, len(b.moves[0])+len(b.moves[1]))
	out = append(out, b.moves[0]...)
	return append(out, b.moves[1]...)
}

// MovesFor returns the last generated moves of color c.
func (b *Board) MovesFor(c Color) []Move {
	out := make([]Move, len(b.moves[c.index()]))
	copy(out, b.moves[c.index()])
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	nb.history = append([]Move(nil), b.history...)
	for i := range b.moves {
		nb.moves[i] = append([]Move(nil), b.moves[i]...)
	}
	return &nb
}

func homeRights(c Color) Bitboard {
	if c == White {
		return whiteCastlingHome
	}
	return blackCastlingHome
}

// setPiece places a piece on an empty square.
func (b *Board) setPiece(p Piece, sq Square) {
	if !b.IsEmpty(sq) {
		panic(fmt.Sprintf("board: set %v on occupied square %v", p, sq))
	}
	b.pieces[bitboardIndex(p)].Set(sq)
	b.mailbox[sq] = p.Code()
}

// removePiece clears an occupied square and returns what stood there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.PieceAt(sq)
	if p.IsNone() {
		panic(fmt.Sprintf("board: remove from empty square %v", sq))
	}
	b.pieces[bitboardIndex(p)].Clear(sq)
	b.mailbox[sq] = 0
	return p
}

// movePiece relocates a piece onto an empty square. It never captures.
func (b *Board) movePiece(from, to Square) {
	if !b.IsEmpty(to) {
		panic(fmt.Sprintf("board: quiet move %v%v onto occupied square", from, to))
	}
	p := b.removePiece(from)
	b.setPiece(p, to)
}

// clearPlacement empties the board and forgets history and generated moves.
func (b *Board) clearPlacement() {
	b.pieces = [12]Bitboard{}
	b.control = [2]Bitboard{}
	b.mailbox = [64]uint16{}
	b.history = nil
	b.moves = [2][]Move{}
}

// String returns a visual representation of the position.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for col := 0; col < 8; col++ {
			p := b.PieceAt(SquareAt(7-col, rank))
			if p.IsNone() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.turn)
	fmt.Fprintf(&sb, "Castling: %s\n", b.castlingField())
	return sb.String()
}

// Dump writes every bitboard and the raw mailbox, for debugging.
func (b *Board) Dump(w io.Writer) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			fmt.Fprintf(w, "%s %s: %d\n", c, pt, uint64(b.pieces[bitboardIndex(NewPiece(c, pt))]))
		}
	}
	fmt.Fprintln(w)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			idx := rank*8 + file
			fmt.Fprintf(w, "[%02d %02d] ", idx, b.mailbox[idx])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "White control: %d\n", uint64(b.control[0]))
	fmt.Fprintf(w, "Black control: %d\n", uint64(b.control[1]))
	fmt.Fprintf(w, "White castling: %d\n", uint64(b.castling[0]))
	fmt.Fprintf(w, "Black castling: %d\n", uint64(b.castling[1]))
}
