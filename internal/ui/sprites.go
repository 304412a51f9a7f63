// Package ui implements the desktop board for chesstrack using Ebitengine.
// It renders the tracked position, turns clicks and drags into move requests
// on a game.Session, and persists preferences, autosaves and finished games.
package ui

import (
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Piece outlines on a 45x45 canvas. {A} expands to the fill and stroke attributes
// of the piece color, {D} to the detail color.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `
<circle cx="22.5" cy="12" r="5" {A}/>
<path d="M 17 19 L 28 19 L 26 24 L 30 36 L 15 36 L 19 24 Z" {A}/>
<rect x="11" y="36" width="23" height="4" {A}/>`,
	board.Rook: `
<path d="M 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 34 15 L 31 18 L 31 31 L 34 34 L 34 36 L 11 36 L 11 34 L 14 31 L 14 18 L 11 15 Z" {A}/>
<rect x="9" y="36" width="27" height="4" {A}/>`,
	board.Knight: `
<path d="M 22 10 C 32.5 11 38.5 18 38 39 L 15 39 C 15 30 25 32.5 23 18 C 21 20 18 21 16 22 C 14 23 12 25 10 26 C 8 26 7 24 8 22 C 10 19 13 16 15 13 C 17 11 19 10 22 10 Z" {A}/>
<circle cx="15" cy="16" r="1.5" {D}/>`,
	board.Bishop: `
<circle cx="22.5" cy="8" r="2.5" {A}/>
<path d="M 22.5 10 C 30 15 31 22 28 27 L 17 27 C 14 22 15 15 22.5 10 Z" {A}/>
<rect x="15" y="27" width="15" height="4" {A}/>
<path d="M 9 36 C 15 34 19 33 22.5 31 C 26 33 30 34 36 36 L 36 39 L 9 39 Z" {A}/>`,
	board.Queen: `
<circle cx="6" cy="12" r="2.5" {A}/>
<circle cx="14" cy="9" r="2.5" {A}/>
<circle cx="22.5" cy="8" r="2.5" {A}/>
<circle cx="31" cy="9" r="2.5" {A}/>
<circle cx="39" cy="12" r="2.5" {A}/>
<path d="M 9 26 L 6 14 L 14 24 L 14 11 L 19 24 L 22.5 10 L 26 24 L 31 11 L 31 24 L 39 14 L 36 26 Z" {A}/>
<path d="M 9 26 C 9 28 11 28 12 30 C 13 32 12 33 11 35 L 34 35 C 33 33 32 32 33 30 C 34 28 36 28 36 26 Z" {A}/>
<rect x="10" y="35" width="25" height="4" {A}/>`,
	board.King: `
<path d="M 21 4 L 24 4 L 24 7 L 27 7 L 27 10 L 24 10 L 24 13 L 21 13 L 21 10 L 18 10 L 18 7 L 21 7 Z" {A}/>
<path d="M 22.5 14 C 27 14 28 18 26 22 L 19 22 C 17 18 18 14 22.5 14 Z" {A}/>
<path d="M 11.5 37 C 17 40 28 40 33.5 37 L 33.5 30 C 33.5 30 42 25.5 39 19.5 C 35 13 25 16 22.5 23.5 C 20 16 10 13 6 19.5 C 3 25.5 11.5 30 11.5 30 Z" {A}/>`,
}

// pieceSVG returns the SVG document of p.
func pieceSVG(p board.Piece) string {
	fill, stroke, detail := "#f8f8f8", "#000000", "#000000"
	if p.Color == board.Black {
		fill, stroke, detail = "#2b2b2b", "#000000", "#e0e0e0"
	}
	attrs := `fill="` + fill + `" stroke="` + stroke + `" stroke-width="1.5" stroke-linejoin="round"`
	body := strings.NewReplacer(
		"{A}", attrs,
		"{D}", `fill="`+detail+`" stroke="none"`,
	).Replace(pieceShapes[p.Type])

	return `<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">` +
		body + "\n</svg>"
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int
	renderScale float64 // pieces are rasterized larger and scaled down for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// loadPieces rasterizes every piece SVG.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			p := board.NewPiece(c, pt)
			rgba, err := rasterizePiece(p, renderSize)
			if err != nil {
				log.Printf("Failed to render %s %s: %v", c, pt, err)
				continue
			}
			sm.pieces[p] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// rasterizePiece renders p into a size x size RGBA image.
func rasterizePiece(p board.Piece, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p)))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sm.drawPiece(screen, p, float64(x), float64(y), 1.0)
}

// drawPiece draws p at (x, y) scaled by factor relative to a square.
func (sm *SpriteManager) drawPiece(screen *ebiten.Image, p board.Piece, x, y, factor float64) {
	if p.IsNone() {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := factor / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
