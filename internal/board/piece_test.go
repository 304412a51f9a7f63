package board

import (
	"errors"
	"testing"
)

func TestPieceCodeRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(c, pt)
			if got := PieceFromCode(p.Code()); got != p {
				t.Errorf("PieceFromCode(%#04b) = %v, want %v", p.Code(), got, p)
			}
		}
	}

	if NewPiece(Black, Queen).Code() != 0b1101 {
		t.Errorf("black queen code = %#04b, want 0b1101", NewPiece(Black, Queen).Code())
	}
}

func TestPieceFromCodeEmpty(t *testing.T) {
	for _, code := range []uint16{0, 0b0111, 0b1000, 0b1111} {
		if p := PieceFromCode(code); !p.IsNone() {
			t.Errorf("PieceFromCode(%#04b) = %v, want no piece", code, p)
		}
	}
}

func TestPieceChars(t *testing.T) {
	for _, c := range "PNBRQKpnbrqk" {
		p := PieceFromChar(byte(c))
		if p.IsNone() {
			t.Fatalf("PieceFromChar(%c) returned no piece", c)
		}
		if p.String() != string(c) {
			t.Errorf("PieceFromChar(%c).String() = %s", c, p.String())
		}
	}
	if p := PieceFromChar('x'); !p.IsNone() {
		t.Errorf("PieceFromChar('x') = %v, want no piece", p)
	}
}

func TestBitboardIndexPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("bitboardIndex(NoPiece) did not panic")
		}
	}()
	bitboardIndex(NoPiece)
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
	}{
		{"h1", H1},
		{"e1", E1},
		{"a1", A1},
		{"h8", H8},
		{"e8", E8},
		{"a8", A8},
		{"e4", Square(3*8 + 3)},
	}

	for _, tc := range tests {
		sq, err := ParseSquare(tc.name)
		if err != nil {
			t.Fatalf("ParseSquare(%s): %v", tc.name, err)
		}
		if sq != tc.sq {
			t.Errorf("ParseSquare(%s) = %d, want %d", tc.name, sq, tc.sq)
		}
		if sq.String() != tc.name {
			t.Errorf("Square(%d).String() = %s, want %s", sq, sq.String(), tc.name)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestSafeCoordinateBounds(t *testing.T) {
	corner := H1.Safe()
	if !corner.Step(SafeCoordinate{-1, 0}).OutOfBounds() {
		t.Error("stepping east of the h-file should leave the board")
	}
	if corner.Step(SafeCoordinate{1, 1}).Square() != G1+8 {
		t.Error("h1 + (1,1) should be g2")
	}

	defer func() {
		if recover() == nil {
			t.Error("Square() on an off-board coordinate did not panic")
		}
	}()
	A8.Safe().Step(SafeCoordinate{0, 1}).Square()
}

func TestParseMove(t *testing.T) {
	from, to, promo, err := ParseMove("e7e8n")
	if err != nil {
		t.Fatal(err)
	}
	if from.String() != "e7" || to.String() != "e8" || promo != Knight {
		t.Errorf("ParseMove(e7e8n) = %v %v %v", from, to, promo)
	}

	for _, bad := range []string{"e2", "e2e4x", "z2e4", "e2e4k"} {
		if _, _, _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded", bad)
		}
	}
}
