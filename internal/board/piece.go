package board

// Color represents the color of a piece or player.
// The values double as the color bit of a piece code.
type Color uint8

const (
	White Color = 0
	Black Color = 8
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ Black
}

// index maps the color to 0 (White) or 1 (Black).
func (c Color) index() int {
	return int(c >> 3)
}

// String returns the color name.
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// Piece codes are four bits wide: 0b1000 is the color bit, 0b0111 the type.
const (
	colorMask uint16 = 0b1000
	typeMask  uint16 = 0b0111
)

// Piece is a decoded (color, type) pair. The packed form only lives in the mailbox.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece is the decoded form of an empty square.
var NoPiece = Piece{}

// NewPiece creates a Piece from Color and PieceType.
func NewPiece(c Color, pt PieceType) Piece {
	return Piece{Color: c, Type: pt}
}

// PieceFromCode decodes a mailbox code. Type bits outside 1..6 yield NoPieceType;
// the color of such a piece carries no meaning.
func PieceFromCode(code uint16) Piece {
	p := Piece{Color: White, Type: NoPieceType}
	if code&colorMask != 0 {
		p.Color = Black
	}
	if t := PieceType(code & typeMask); t >= Pawn && t <= King {
		p.Type = t
	}
	return p
}

// Code packs the piece into its mailbox code.
func (p Piece) Code() uint16 {
	return uint16(p.Color) | uint16(p.Type)
}

// IsNone reports whether the piece is the empty sentinel.
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsNone() {
		return " "
	}
	c := p.Type.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return NewPiece(White, Pawn)
	case 'N':
		return NewPiece(White, Knight)
	case 'B':
		return NewPiece(White, Bishop)
	case 'R':
		return NewPiece(White, Rook)
	case 'Q':
		return NewPiece(White, Queen)
	case 'K':
		return NewPiece(White, King)
	case 'p':
		return NewPiece(Black, Pawn)
	case 'n':
		return NewPiece(Black, Knight)
	case 'b':
		return NewPiece(Black, Bishop)
	case 'r':
		return NewPiece(Black, Rook)
	case 'q':
		return NewPiece(Black, Queen)
	case 'k':
		return NewPiece(Black, King)
	default:
		return NoPiece
	}
}

// bitboardIndex selects one of the twelve occupancy bitboards.
// Panics for NoPieceType: no bitboard exists for an empty square.
func bitboardIndex(p Piece) int {
	if p.Type < Pawn || p.Type > King {
		panic("board: no bitboard for piece type " + p.Type.String())
	}
	return p.Color.index()*6 + int(p.Type-Pawn)
}
