package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chesstrack/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	WhiteControl   color.RGBA
	BlackControl   color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		WhiteControl:   color.RGBA{80, 140, 230, 70},
		BlackControl:   color.RGBA{230, 80, 80, 70},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all board drawing. The a-file is on the left with White at
// the bottom unless flipped.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped puts Black at the bottom when flipped.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// DrawBoard draws the squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.squareSize)
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		c := r.theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			c = r.theme.DarkSquare
		}
		x, y := r.SquareToScreen(sq)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
	r.drawCoordinates(screen)
}

// drawCoordinates labels files along the bottom edge and ranks along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := smallFace
	for i := 0; i < 8; i++ {
		// File letters on the bottom row.
		fileSq, _ := r.ScreenSquareAt(i, 7)
		x, y := r.SquareToScreen(fileSq)
		label := string(rune('h' - fileSq.File()))
		w, h := MeasureText(label, face)
		drawText(screen, label, face,
			float64(x+r.squareSize)-w-3, float64(y+r.squareSize)-h-2, r.coordColor(fileSq))

		// Rank numbers on the left column.
		rankSq, _ := r.ScreenSquareAt(0, i)
		x, y = r.SquareToScreen(rankSq)
		drawText(screen, strconv.Itoa(rankSq.Rank()+1), face, float64(x+3), float64(y+2), r.coordColor(rankSq))
	}
}

// coordColor picks the square color opposite to sq so labels stay readable.
func (r *Renderer) coordColor(sq board.Square) color.RGBA {
	if (sq.File()+sq.Rank())%2 == 1 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// DrawControl tints the squares side controls.
func (r *Renderer) DrawControl(screen *ebiten.Image, b *board.Board, side board.Color) {
	c := r.theme.WhiteControl
	if side == board.Black {
		c = r.theme.BlackControl
	}
	for _, sq := range b.Control(side).Squares() {
		r.highlightSquare(screen, sq, c)
	}
}

// DrawHighlights draws the last move, the selection and its destinations.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Square, lastMove board.Move, hasLast bool) {
	if hasLast {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}
	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}
	for _, sq := range targets {
		r.drawTargetIndicator(screen, sq)
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawTargetIndicator draws a circle on a destination square.
func (r *Renderer) drawTargetIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	vector.DrawFilledCircle(screen, float32(x)+half, float32(y)+half, float32(r.squareSize)*0.15, r.theme.LegalMoveColor, false)
}

// DrawPieces draws every piece, skipping the one being dragged and applying shake offsets.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, dragSquare board.Square, anims *AnimationManager) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		if sq == dragSquare {
			continue
		}
		piece := b.PieceAt(sq)
		if piece.IsNone() {
			continue
		}

		x, y := r.SquareToScreen(sq)
		if anims != nil {
			dx, dy := anims.GetShakeOffset(sq)
			x += int(dx)
			y += int(dy)
		}
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}

// DrawDraggedPiece draws the piece being dragged centered on the cursor.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	half := r.squareSize / 2
	r.sprites.DrawPieceAt(screen, piece, mouseX-half, mouseY-half)
}

// SquareToScreen converts a board square to the screen position of its top-left corner.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	col, row := squareCell(sq, r.flipped)
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square, NoSquare off the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	sq, _ := r.ScreenSquareAt(x/r.squareSize, y/r.squareSize)
	return sq
}

// ScreenSquareAt returns the square drawn in column col and row row.
func (r *Renderer) ScreenSquareAt(col, row int) (board.Square, bool) {
	return cellSquare(col, row, r.flipped)
}

// squareCell maps a square to its screen column and row.
func squareCell(sq board.Square, flipped bool) (col, row int) {
	col, row = 7-sq.File(), 7-sq.Rank()
	if flipped {
		col, row = sq.File(), sq.Rank()
	}
	return col, row
}

// cellSquare is the inverse of squareCell.
func cellSquare(col, row int, flipped bool) (board.Square, bool) {
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return board.NoSquare, false
	}
	file, rank := 7-col, 7-row
	if flipped {
		file, rank = col, row
	}
	return board.SquareAt(file, rank), true
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
