// Package board implements a chess position tracker: bitboard state, pseudo-legal
// move generation, move application and a FEN-like position loader.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Files are counted from the h-file: H1=0, A1=7, H8=56, A8=63.
type Square uint8

// Square constants used by castling and tests.
const (
	H1 Square = 0
	G1 Square = 1
	F1 Square = 2
	E1 Square = 3
	D1 Square = 4
	C1 Square = 5
	B1 Square = 6
	A1 Square = 7
	H8 Square = 56
	G8 Square = 57
	F8 Square = 58
	E8 Square = 59
	D8 Square = 60
	C8 Square = 61
	B8 Square = 62
	A8 Square = 63

	NoSquare Square = 64
)

// File returns the file index of the square (0-7, where 0=h, 7=a).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the rank index of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// Coordinate returns the (file, rank) pair of the square.
func (sq Square) Coordinate() Coordinate {
	return Coordinate{X: uint8(sq.File()), Y: uint8(sq.Rank())}
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'h'-sq.File(), '1'+sq.Rank())
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// SquareAt returns the square for a file and rank. It panics when either is off the board.
func SquareAt(file, rank int) Square {
	res := rank*8 + file
	if file < 0 || file > 7 || res < 0 || res > 63 {
		panic(fmt.Sprintf("board: square (%d,%d) out of range", file, rank))
	}
	return Square(res)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	file := int('h' - s[0])
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return SquareAt(file, rank), nil
}

// Coordinate is an on-board (file, rank) pair.
type Coordinate struct {
	X, Y uint8
}

// Square converts the coordinate back to a square index.
func (c Coordinate) Square() Square {
	return SquareAt(int(c.X), int(c.Y))
}

func (c Coordinate) String() string {
	return c.Square().String()
}

// SafeCoordinate is a signed (file, rank) pair used to probe squares that may be off the board.
type SafeCoordinate struct {
	X, Y int
}

// Safe returns the signed form of a square's coordinate.
func (sq Square) Safe() SafeCoordinate {
	return SafeCoordinate{X: sq.File(), Y: sq.Rank()}
}

// Step returns the coordinate moved by dir.
func (c SafeCoordinate) Step(dir SafeCoordinate) SafeCoordinate {
	return SafeCoordinate{X: c.X + dir.X, Y: c.Y + dir.Y}
}

// OutOfBounds reports whether the coordinate lies off the board.
func (c SafeCoordinate) OutOfBounds() bool {
	return c.X < 0 || c.X > 7 || c.Y < 0 || c.Y > 7
}

// Coordinate converts to an on-board coordinate, panicking when out of bounds.
func (c SafeCoordinate) Coordinate() Coordinate {
	if c.OutOfBounds() {
		panic(fmt.Sprintf("board: coordinate (%d,%d) out of bounds", c.X, c.Y))
	}
	return Coordinate{X: uint8(c.X), Y: uint8(c.Y)}
}

// Square converts to a square index, panicking when out of bounds.
func (c SafeCoordinate) Square() Square {
	return c.Coordinate().Square()
}

// Ray and jump directions.
var (
	diagonalDirs = [4]SafeCoordinate{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	straightDirs = [4]SafeCoordinate{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	queenDirs    = [8]SafeCoordinate{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	knightJumps  = [8]SafeCoordinate{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1}}
)
