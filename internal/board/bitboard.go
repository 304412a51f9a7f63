package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = H1, Bit 7 = A1, Bit 56 = H8, Bit 63 = A8 (files counted from the h-file).
type Bitboard uint64

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// Empty is the bitboard with no squares set.
const Empty Bitboard = 0

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets the bit at the given square.
func (b *Bitboard) Set(sq Square) {
	*b |= 1 << sq
}

// Clear clears the bit at the given square.
func (b *Bitboard) Clear(sq Square) {
	*b &^= 1 << sq
}

// Zero clears every bit.
func (b *Bitboard) Zero() {
	*b = 0
}

// Replace overwrites the raw value.
func (b *Bitboard) Replace(v uint64) {
	*b = Bitboard(v)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns a slice of all squares that are set, lowest index first.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		sq := Square(bits.TrailingZeros64(uint64(b)))
		squares = append(squares, sq)
		b &= b - 1
	}
	return squares
}

// String returns a visual representation of the bitboard, a-file on the left.
func (b Bitboard) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for col := 0; col < 8; col++ {
			if b.IsSet(SquareAt(7-col, rank)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}
