package board

import (
	"errors"
	"testing"
)

// perft counts pseudo-legal leaf nodes at the given depth. Every child is built
// on a clone, so the parent board keeps its generated moves.
func perft(b *Board, depth int) int64 {
	moves := b.MovesFor(b.Turn())
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		for _, child := range children(b, m) {
			nodes += perft(child, depth-1)
		}
	}
	return nodes
}

// children applies m on clones of b, expanding an ambiguous promotion into
// one child per candidate.
func children(b *Board, m Move) []*Board {
	nb := b.Clone()
	err := nb.MakeMove(m.From, m.To, NoPieceType)
	if err == nil {
		nb.ToggleTurn()
		nb.GenerateMoves()
		return []*Board{nb}
	}

	var amb *AmbiguousMoveError
	if !errors.As(err, &amb) {
		panic(err)
	}
	out := make([]*Board, 0, len(amb.Candidates))
	for _, c := range amb.Candidates {
		nb := b.Clone()
		if err := nb.MakeMove(c.From, c.To, c.Type.Promotion); err != nil {
			panic(err)
		}
		nb.ToggleTurn()
		nb.GenerateMoves()
		out = append(out, nb)
	}
	return out
}

func mustLoadFEN(t testing.TB, fen string) *Board {
	t.Helper()
	b := New()
	if err := b.LoadFEN(fen); err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	return b
}

// TestPerftStartingPosition tests move generation from the starting position.
// Up to depth 3 no side can be in check, so pseudo-legal and legal counts agree.
func TestPerftStartingPosition(t *testing.T) {
	b := mustLoadFEN(t, StartFEN)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPromotion checks that ambiguous promotions expand to four children.
func TestPerftPromotion(t *testing.T) {
	b := mustLoadFEN(t, "7k/P7/8/8/8/8/8/7K w - - 0 1")

	// a7a8 counts once at depth 1 and expands to four boards below it.
	if got := perft(b, 1); got != 4 {
		t.Errorf("perft(1) = %d, want 4", got)
	}

	a7, _ := ParseSquare("a7")
	var promoted int
	for _, m := range b.MovesFor(White) {
		if m.From == a7 {
			promoted += len(children(b, m))
		}
	}
	if promoted != 4 {
		t.Errorf("a7a8 expands to %d children, want 4", promoted)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := New()
	pos.LoadPosition(StartPlacement)
	for i := 0; i < b.N; i++ {
		perft(pos, 3)
	}
}
