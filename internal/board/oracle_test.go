package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// In these positions no piece is pinned and no king is in check, and castling
// paths coincide with the legal rules, so pseudo-legal and legal moves agree.
var oraclePositions = []string{
	StartFEN,
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
	"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	"4k3/8/8/8/8/8/8/R3K2R b KQ - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 3 3",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"1r5k/P7/8/8/8/8/8/7K w - - 0 1",
}

// fromTo renders moves as from-to pairs, collapsing promotion choices.
func fromTo(moves []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range moves {
		key := m[:4]
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func TestMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oraclePositions {
		t.Run(fen, func(t *testing.T) {
			b := mustLoadFEN(t, fen)
			var ours []string
			for _, m := range b.MovesFor(b.Turn()) {
				ours = append(ours, m.String())
			}

			ref := dragontoothmg.ParseFen(fen)
			legal := ref.GenerateLegalMoves()
			var theirs []string
			for i := range legal {
				theirs = append(theirs, legal[i].String())
			}

			if diff := cmp.Diff(fromTo(theirs), fromTo(ours)); diff != "" {
				t.Errorf("move set mismatch (-dragontooth +ours):\n%s", diff)
			}
		})
	}
}
