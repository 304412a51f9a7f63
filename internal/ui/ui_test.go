package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
)

func TestSquareCells(t *testing.T) {
	tests := []struct {
		sq       string
		flipped  bool
		col, row int
	}{
		{"a1", false, 0, 7},
		{"h1", false, 7, 7},
		{"a8", false, 0, 0},
		{"e4", false, 4, 4},
		{"a1", true, 7, 0},
		{"h8", true, 0, 7},
	}
	for _, tc := range tests {
		sq, err := board.ParseSquare(tc.sq)
		require.NoError(t, err)

		col, row := squareCell(sq, tc.flipped)
		assert.Equal(t, tc.col, col, "%s flipped=%v col", tc.sq, tc.flipped)
		assert.Equal(t, tc.row, row, "%s flipped=%v row", tc.sq, tc.flipped)

		back, ok := cellSquare(col, row, tc.flipped)
		require.True(t, ok)
		assert.Equal(t, sq, back)
	}

	_, ok := cellSquare(8, 0, false)
	assert.False(t, ok)
	_, ok = cellSquare(0, -1, true)
	assert.False(t, ok)
}

func TestPieceSVGParses(t *testing.T) {
	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			doc := pieceSVG(board.NewPiece(c, pt))
			assert.NotContains(t, doc, "{A}")
			_, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.StrictErrorMode)
			assert.NoError(t, err, "%s %s", c, pt)
		}
	}
}

func TestRasterizePiece(t *testing.T) {
	img, err := rasterizePiece(board.NewPiece(board.White, board.Queen), 90)
	require.NoError(t, err)
	assert.Equal(t, 90, img.Bounds().Dx())

	// The center of the queen is painted, the corner is not.
	_, _, _, a := img.At(45, 55).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name     string
		move     board.Move
		captured bool
		want     SoundType
	}{
		{"quiet", board.Move{Type: board.KnightMove()}, false, SoundMove},
		{"capture", board.Move{Type: board.BishopMove()}, true, SoundCapture},
		{"en passant", board.Move{Type: board.PawnEnPassant(board.Coordinate{})}, false, SoundCapture},
		{"castle", board.Move{Type: board.CastleKingSide()}, false, SoundCastle},
		{"promotion", board.Move{Type: board.PawnCapture(board.Queen)}, true, SoundPromote},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, soundFor(tc.move, tc.captured), tc.name)
	}
}

func TestGeneratedSounds(t *testing.T) {
	sounds := generateSounds()
	for st := SoundMove; st <= SoundNewGame; st++ {
		data, ok := sounds[st]
		require.True(t, ok, "sound %d missing", st)
		assert.NotEmpty(t, data)
		assert.Zero(t, len(data)%4, "sound %d is not whole stereo frames", st)
	}
}

func TestShakeOffset(t *testing.T) {
	assert.Zero(t, shakeOffset(8, 0))
	assert.Zero(t, shakeOffset(8, 1))
	assert.Zero(t, shakeOffset(8, -0.5))

	mid := shakeOffset(8, 0.04)
	assert.NotZero(t, mid)
	assert.LessOrEqual(t, mid, 8.0)
}

func TestFadeAlpha(t *testing.T) {
	const life, fade = 2 * time.Second, 200 * time.Millisecond
	assert.Zero(t, fadeAlpha(0, life, fade))
	assert.InDelta(t, 0.5, fadeAlpha(100*time.Millisecond, life, fade), 1e-9)
	assert.Equal(t, 1.0, fadeAlpha(time.Second, life, fade))
	assert.InDelta(t, 0.5, fadeAlpha(1900*time.Millisecond, life, fade), 1e-9)
	assert.Zero(t, fadeAlpha(3*time.Second, life, fade))
}

func TestPruneExpired(t *testing.T) {
	now := time.Now()
	items := []*Toast{
		{timed: timed{start: now.Add(-3 * time.Second), duration: time.Second}, Message: "old"},
		{timed: timed{start: now, duration: time.Second}, Message: "new"},
		{timed: timed{start: now}, Message: "instant"},
	}
	live := prune(items, now.Add(500*time.Millisecond))
	require.Len(t, live, 1)
	assert.Equal(t, "new", live[0].Message)
}

func TestToastStackLimit(t *testing.T) {
	tm := NewToastManager()
	for _, m := range []string{"a", "b", "c", "d"} {
		tm.Show(m, ToastInfo, time.Minute)
	}
	require.Len(t, tm.toasts, 3)
	assert.Equal(t, "b", tm.toasts[0].Message)
}

func TestInvalidMoveMessages(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range []game.InvalidMoveReason{
		game.ReasonNoPiece,
		game.ReasonNotYourTurn,
		game.ReasonBlockedByOwnPiece,
		game.ReasonInvalidPieceMovement,
	} {
		msg := invalidMoveMessage(r)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
}

func TestPromotionPickerChoice(t *testing.T) {
	pp := NewPromotionPicker()
	pp.Show(board.White, nil, nil)

	assert.Equal(t, 0, pp.choiceAt(pp.x+1, pp.y+1))
	assert.Equal(t, 3, pp.choiceAt(pp.x+3*SquareSize+10, pp.y+10))
	assert.Equal(t, -1, pp.choiceAt(pp.x+4*SquareSize, pp.y+10))
	assert.Equal(t, -1, pp.choiceAt(pp.x-1, pp.y+10))
	assert.Equal(t, -1, pp.choiceAt(pp.x+10, pp.y+SquareSize))
}
