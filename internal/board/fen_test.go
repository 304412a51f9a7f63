package board

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadPositionStart(t *testing.T) {
	b := New()
	b.LoadPosition(StartPlacement)

	mailbox := b.Mailbox()
	if got := PieceFromCode(mailbox[0]); got != NewPiece(White, Rook) {
		t.Errorf("index 0 (h1) holds %v, want white rook", got)
	}
	if got := PieceFromCode(mailbox[E1]); got != NewPiece(White, King) {
		t.Errorf("e1 holds %v, want white king", got)
	}
	if got := PieceFromCode(mailbox[E8]); got != NewPiece(Black, King) {
		t.Errorf("e8 holds %v, want black king", got)
	}
	if got := PieceFromCode(mailbox[A8]); got != NewPiece(Black, Rook) {
		t.Errorf("index 63 (a8) holds %v, want black rook", got)
	}

	if b.Occupied(White) != Rank1|Rank2 {
		t.Errorf("white occupancy:\n%v", b.Occupied(White))
	}
	if b.Occupied(Black) != Rank7|Rank8 {
		t.Errorf("black occupancy:\n%v", b.Occupied(Black))
	}
	if b.Placement() != StartPlacement {
		t.Errorf("Placement() = %s", b.Placement())
	}
}

func TestLoadPositionSkipsUnknownCharacters(t *testing.T) {
	b := New()
	b.LoadPosition("rnbqkbnr/ppppxpppp/8/8/8/8/PPPPPPPP/RNBQKBNR")

	if b.Placement() != StartPlacement {
		t.Errorf("Placement() = %s, want %s", b.Placement(), StartPlacement)
	}
}

func TestLoadPositionDropsOverflow(t *testing.T) {
	b := New()
	b.LoadPosition("8/8/8/8/8/8/8/8K")

	if b.Occupied(White)|b.Occupied(Black) != 0 {
		t.Errorf("overflowing piece placed:\n%v", b)
	}
}

func TestLoadPositionKeepsTurnAndRights(t *testing.T) {
	b := New()
	b.ToggleTurn()
	b.SetCastlingRights(White, SquareBB(A1))
	b.LoadPosition(StartPlacement)

	if b.Turn() != Black {
		t.Error("LoadPosition reset the side to move")
	}
	if b.CastlingRights(White) != SquareBB(A1) {
		t.Errorf("white rights = %v, want a1 only", b.CastlingRights(White).Squares())
	}
}

func TestLoadPositionClearsHistory(t *testing.T) {
	b := mustLoadFEN(t, StartFEN)
	play(t, b, "e2e4", "d7d5")
	b.LoadPosition(StartPlacement)

	if len(b.History()) != 0 {
		t.Errorf("history has %d moves after reload", len(b.History()))
	}
	if len(b.MovesFor(White)) != 20 {
		t.Errorf("white has %d moves after reload, want 20", len(b.MovesFor(White)))
	}
}

func TestLoadFEN(t *testing.T) {
	b := mustLoadFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40")

	if b.Turn() != Black {
		t.Error("side to move not applied")
	}
	if b.CastlingRights(White) != SquareBB(H1) {
		t.Errorf("white rights = %v, want h1", b.CastlingRights(White).Squares())
	}
	if b.CastlingRights(Black) != SquareBB(A8) {
		t.Errorf("black rights = %v, want a8", b.CastlingRights(Black).Squares())
	}
	if got := b.FEN(); got != "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1" {
		t.Errorf("FEN() = %s", got)
	}
}

func TestLoadFENPlacementOnly(t *testing.T) {
	b := New()
	if err := b.LoadFEN("8/8/8/8/8/8/8/4K2k"); err != nil {
		t.Fatal(err)
	}
	if b.Turn() != White || b.CastlingRights(White) != whiteCastlingHome {
		t.Error("missing fields overwrote turn or castling rights")
	}
}

func TestLoadFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", "   "},
		{"bad side", StartPlacement + " x KQkq - 0 1"},
		{"bad castling", StartPlacement + " w KX - 0 1"},
		{"bad halfmove", StartPlacement + " w KQkq - a 1"},
		{"bad fullmove", StartPlacement + " w KQkq - 0 b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			if err := b.LoadFEN(tc.fen); !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("LoadFEN(%q) error = %v, want ErrInvalidFEN", tc.fen, err)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	b := mustLoadFEN(t, StartFEN)
	if b.FEN() != StartFEN {
		t.Errorf("FEN() = %s, want %s", b.FEN(), StartFEN)
	}

	play(t, b, "e2e4")
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	if b.FEN() != want {
		t.Errorf("FEN() = %s, want %s", b.FEN(), want)
	}

	again := mustLoadFEN(t, b.FEN())
	if again.Placement() != b.Placement() || again.Turn() != b.Turn() {
		t.Error("reloading FEN() does not reproduce the position")
	}
}

func TestBoardString(t *testing.T) {
	b := mustLoadFEN(t, StartFEN)
	s := b.String()
	for _, want := range []string{"8  r n b q k b n r", "1  R N B Q K B N R", "Side to move: White", "Castling: KQkq"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	var sb strings.Builder
	b.Dump(&sb)
	if !strings.Contains(sb.String(), "White castling: 129") {
		t.Errorf("Dump() missing castling bitboard:\n%s", sb.String())
	}
}
