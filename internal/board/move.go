package board

import "fmt"

// MoveKind tags the variant of a MoveType.
type MoveKind uint8

const (
	NoMoveKind MoveKind = iota
	PawnPushKind
	PawnDoublePushKind
	PawnCaptureKind
	PawnEnPassantKind
	QueenMoveKind
	RookMoveKind
	BishopMoveKind
	KnightMoveKind
	KingMoveKind
	CastleKingSideKind
	CastleQueenSideKind
)

var moveKindNames = [...]string{
	"None", "PawnPush", "PawnDoublePush", "PawnCapture", "PawnEnPassant",
	"QueenMove", "RookMove", "BishopMove", "KnightMove", "KingMove",
	"CastleKingSide", "CastleQueenSide",
}

func (k MoveKind) String() string {
	if int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return fmt.Sprintf("MoveKind(%d)", k)
}

// MoveType is a tagged variant. Promotion is only meaningful for PawnPush and
// PawnCapture, Captured only for PawnEnPassant. Build values with the constructors below.
type MoveType struct {
	Kind      MoveKind
	Promotion PieceType
	Captured  Coordinate
}

// PawnPush is a single-step pawn move, optionally promoting.
func PawnPush(promotion PieceType) MoveType {
	return MoveType{Kind: PawnPushKind, Promotion: promotion}
}

// PawnDoublePush is a two-step pawn move from the home rank.
func PawnDoublePush() MoveType { return MoveType{Kind: PawnDoublePushKind} }

// PawnCapture is a diagonal pawn capture, optionally promoting.
func PawnCapture(promotion PieceType) MoveType {
	return MoveType{Kind: PawnCaptureKind, Promotion: promotion}
}

// PawnEnPassant captures the pawn standing on captured rather than on the destination.
func PawnEnPassant(captured Coordinate) MoveType {
	return MoveType{Kind: PawnEnPassantKind, Captured: captured}
}

func QueenMove() MoveType       { return MoveType{Kind: QueenMoveKind} }
func RookMove() MoveType        { return MoveType{Kind: RookMoveKind} }
func BishopMove() MoveType      { return MoveType{Kind: BishopMoveKind} }
func KnightMove() MoveType      { return MoveType{Kind: KnightMoveKind} }
func KingMove() MoveType        { return MoveType{Kind: KingMoveKind} }
func CastleKingSide() MoveType  { return MoveType{Kind: CastleKingSideKind} }
func CastleQueenSide() MoveType { return MoveType{Kind: CastleQueenSideKind} }

// IsPawnPush reports PawnPush or PawnDoublePush.
func (t MoveType) IsPawnPush() bool {
	return t.Kind == PawnPushKind || t.Kind == PawnDoublePushKind
}

// IsCastle reports either castling variant.
func (t MoveType) IsCastle() bool {
	return t.Kind == CastleKingSideKind || t.Kind == CastleQueenSideKind
}

// canPromote reports whether the variant carries a promotion payload.
func (t MoveType) canPromote() bool {
	return t.Kind == PawnPushKind || t.Kind == PawnCaptureKind
}

func (t MoveType) String() string {
	switch {
	case t.canPromote() && t.Promotion != NoPieceType:
		return fmt.Sprintf("%s{%s}", t.Kind, t.Promotion)
	case t.Kind == PawnEnPassantKind:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Captured)
	default:
		return t.Kind.String()
	}
}

// Move is a generated or applied move between two squares.
type Move struct {
	From Square
	To   Square
	Type MoveType
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Type.canPromote() && m.Type.Promotion != NoPieceType {
		s += string(m.Type.Promotion.Char())
	}
	return s
}

// ParseMove parses coordinate notation into its squares and optional promotion piece.
// The result is a request: MakeMove decides which move type it maps to.
func ParseMove(s string) (from, to Square, promotion PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("invalid move string: %s", s)
	}

	from, err = ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}

	to, err = ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}

	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promotion = Knight
		case 'b':
			promotion = Bishop
		case 'r':
			promotion = Rook
		case 'q':
			promotion = Queen
		default:
			return NoSquare, NoSquare, NoPieceType, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return from, to, promotion, nil
}
