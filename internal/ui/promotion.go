package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chesstrack/internal/board"
)

// promotionChoices is the order pieces are offered in.
var promotionChoices = []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}

// PromotionPicker asks which piece a pawn promotes to.
type PromotionPicker struct {
	visible bool
	color   board.Color
	x, y    int
	hovered int

	onPick   func(board.PieceType)
	onCancel func()
}

// NewPromotionPicker creates a hidden picker.
func NewPromotionPicker() *PromotionPicker {
	return &PromotionPicker{hovered: -1}
}

// Show opens the picker for a pawn of color c, centered over the board.
func (pp *PromotionPicker) Show(c board.Color, onPick func(board.PieceType), onCancel func()) {
	pp.visible = true
	pp.color = c
	pp.onPick = onPick
	pp.onCancel = onCancel
	pp.x = (BoardSize - len(promotionChoices)*SquareSize) / 2
	pp.y = (BoardSize - SquareSize) / 2
}

func (pp *PromotionPicker) Hide() {
	pp.visible = false
	pp.hovered = -1
}

func (pp *PromotionPicker) IsVisible() bool {
	return pp.visible
}

// choiceAt returns the index of the choice under (mx, my), -1 when none.
func (pp *PromotionPicker) choiceAt(mx, my int) int {
	if my < pp.y || my >= pp.y+SquareSize || mx < pp.x {
		return -1
	}
	i := (mx - pp.x) / SquareSize
	if i >= len(promotionChoices) {
		return -1
	}
	return i
}

// Update handles picking. The picker consumes all input while visible.
func (pp *PromotionPicker) Update(input *InputHandler) bool {
	if !pp.visible {
		return false
	}

	mx, my := input.MousePosition()
	pp.hovered = pp.choiceAt(mx, my)

	if IsKeyJustPressed(ebiten.KeyEscape) || input.IsRightJustPressed() {
		pp.Hide()
		if pp.onCancel != nil {
			pp.onCancel()
		}
		return true
	}
	if input.IsLeftJustPressed() && pp.hovered >= 0 {
		pt := promotionChoices[pp.hovered]
		pp.Hide()
		if pp.onPick != nil {
			pp.onPick(pt)
		}
	}
	return true
}

// AnyButtonHovered reports whether a choice is under the cursor.
func (pp *PromotionPicker) AnyButtonHovered() bool {
	return pp.visible && pp.hovered >= 0
}

// Draw renders the picker.
func (pp *PromotionPicker) Draw(screen *ebiten.Image, r *Renderer) {
	if !pp.visible {
		return
	}

	const pad = 12
	w := len(promotionChoices) * SquareSize
	vector.DrawFilledRect(screen, 0, 0, float32(BoardSize), float32(BoardSize), modalOverlay, false)
	vector.DrawFilledRect(screen, float32(pp.x-pad), float32(pp.y-pad-24), float32(w+pad*2), float32(SquareSize+pad*2+24), modalBg, false)
	vector.StrokeRect(screen, float32(pp.x-pad), float32(pp.y-pad-24), float32(w+pad*2), float32(SquareSize+pad*2+24), 2, modalBorder, false)
	drawTextCentered(screen, "Promote to", GetRegularFace(), float64(pp.x+w/2), float64(pp.y-pad-4), textSecondary)

	for i, pt := range promotionChoices {
		x := pp.x + i*SquareSize
		bg := r.Theme().LightSquare
		if i == pp.hovered {
			bg = r.Theme().SelectedSquare
		}
		vector.DrawFilledRect(screen, float32(x), float32(pp.y), float32(SquareSize), float32(SquareSize), bg, false)
		r.Sprites().DrawPieceAt(screen, board.NewPiece(pp.color, pt), x, pp.y)
	}
}
