package board

import "testing"

func TestHashTransposition(t *testing.T) {
	a := mustLoadFEN(t, StartFEN)
	play(t, a, "g1f3", "g8f6", "b1c3")

	b := mustLoadFEN(t, StartFEN)
	play(t, b, "b1c3", "g8f6", "g1f3")

	if a.Hash() != b.Hash() {
		t.Errorf("transposed positions hash differently: %x != %x", a.Hash(), b.Hash())
	}
}

func TestHashDistinguishesState(t *testing.T) {
	base := mustLoadFEN(t, StartFEN)
	h := base.Hash()

	turn := base.Clone()
	turn.ToggleTurn()
	if turn.Hash() == h {
		t.Error("side to move does not affect the hash")
	}

	rights := base.Clone()
	rights.SetCastlingRights(Black, SquareBB(H8))
	if rights.Hash() == h {
		t.Error("castling rights do not affect the hash")
	}

	moved := base.Clone()
	play(t, moved, "e2e4")
	moved.ToggleTurn()
	if moved.Hash() == h {
		t.Error("placement does not affect the hash")
	}

	if mustLoadFEN(t, StartFEN).Hash() != h {
		t.Error("hash is not reproducible")
	}
}
