package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chesstrack/internal/board"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 28
	ButtonHeight    = 40
	TabHeight       = 34
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	statusBarHeight = 92
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	sectionBg       = color.RGBA{48, 52, 58, 255}
	tabActiveBg     = color.RGBA{76, 132, 96, 255}
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}
	tabHoverBg      = color.RGBA{65, 70, 78, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusPending   = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	// Active reports the toggle state of tab buttons; nil for plain buttons.
	Active  func() bool
	hovered bool
	pressed bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with controls, the move log and the status bar.
type Panel struct {
	game      *Game
	collapsed bool

	collapseBtn *Button
	newGameBtn  *Button
	settingsBtn *Button
	viewTabs    []*Button // [0] = flip, [1] = control overlay

	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	tabY := (ScreenHeight - CollapseButtonH) / 2
	collapseX := BoardSize
	if p.collapsed {
		collapseX = BoardSize + 2
	}
	p.collapseBtn = &Button{
		X: collapseX, Y: tabY,
		W: CollapseButtonW, H: CollapseButtonH,
		OnClick: p.toggleCollapse,
	}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	newGameY := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: newGameY,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: p.game.NewGameAction,
	}

	settingsY := newGameY + ButtonHeight + 8
	p.settingsBtn = &Button{
		X: contentX, Y: settingsY,
		W: contentW, H: ButtonHeight - 6,
		Label:   "Settings",
		OnClick: p.game.ShowSettings,
	}

	viewTabY := settingsY + ButtonHeight - 6 + SectionSpacing - 8 + SectionLabelH
	tabW := contentW / 2
	p.viewTabs = []*Button{
		{X: contentX, Y: viewTabY, W: tabW, H: TabHeight, Label: "Flip Board",
			OnClick: p.game.ToggleFlip, Active: p.game.Flipped},
		{X: contentX + tabW, Y: viewTabY, W: tabW, H: TabHeight, Label: "Control",
			OnClick: p.game.ToggleControl, Active: p.game.ShowControl},
	}
}

func (p *Panel) buttons() []*Button {
	if p.collapsed {
		return []*Button{p.collapseBtn}
	}
	return append([]*Button{p.collapseBtn, p.newGameBtn, p.settingsBtn}, p.viewTabs...)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	if !p.collapsed && input.WheelY() != 0 {
		historyY := p.historyStartY()
		if mx >= BoardSize && my >= historyY && my < ScreenHeight-statusBarHeight {
			p.scrollY -= int(input.WheelY() * 30)
			p.scrollY = max(0, min(p.scrollY, p.maxScrollY))
		}
	}

	for _, btn := range p.buttons() {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range p.buttons() {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}
	return mx >= BoardSize && input.IsLeftJustPressed()
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	panelX := float32(BoardSize)

	if p.collapsed {
		vector.DrawFilledRect(screen, panelX, 0, float32(CollapsedWidth), float32(ScreenHeight), panelBg, false)
		p.drawCollapseButton(screen, true)
		return
	}

	vector.DrawFilledRect(screen, panelX, 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)
	p.drawCollapseButton(screen, false)
	p.drawPrimaryButton(screen, p.newGameBtn)
	p.drawSecondaryButton(screen, p.settingsBtn)

	p.drawSectionLabel(screen, "View", BoardSize+PanelPadding, p.viewTabs[0].Y-SectionLabelH)
	p.drawTabs(screen, p.viewTabs)

	historyY := p.historyStartY()
	p.drawSectionLabel(screen, "Moves", BoardSize+PanelPadding, historyY)
	p.drawMoveLog(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) historyStartY() int {
	return p.viewTabs[0].Y + p.viewTabs[0].H + SectionSpacing - 4
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn
	bg := panelBg
	if btn.hovered {
		bg = sectionBg
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)

	arrow := "‹"
	if expand {
		arrow = "›"
	}
	c := textMuted
	if btn.hovered {
		c = textPrimary
	}
	p.drawTextCentered(screen, arrow, btn.X+btn.W/2, btn.Y+btn.H/2, c)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bg := accentColor
	if btn.pressed {
		bg = accentPressed
	} else if btn.hovered {
		bg = accentHover
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)

	border := accentPressed
	if btn.hovered {
		border = color.RGBA{116, 215, 160, 255}
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, border, false)
	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bg := buttonBg
	if btn.pressed {
		bg = buttonPressedBg
	} else if btn.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)

	border := buttonBorder
	if btn.hovered {
		border = accentColor
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, border, false)
	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textSecondary)
}

func (p *Panel) drawTabs(screen *ebiten.Image, tabs []*Button) {
	for _, btn := range tabs {
		active := btn.Active != nil && btn.Active()

		bg := tabInactiveBg
		switch {
		case active:
			bg = tabActiveBg
		case btn.pressed:
			bg = buttonPressedBg
		case btn.hovered:
			bg = tabHoverBg
		}
		vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)

		border := buttonBorder
		if active {
			border = tabActiveBg
		} else if btn.hovered {
			border = accentColor
		}
		vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, border, false)

		c := textSecondary
		if active {
			c = textPrimary
		}
		p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, c)
	}
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	p.drawText(screen, label, x, y, textMuted)
}

// drawMoveLog lists the session log two plies per row, scrolled by the wheel.
func (p *Panel) drawMoveLog(screen *ebiten.Image, startY int) {
	moves := p.game.Session().Log()
	if len(moves) == 0 {
		p.drawText(screen, "No moves yet", BoardSize+PanelPadding, startY+5, textMuted)
		return
	}

	x := BoardSize + PanelPadding
	const rowHeight = 22
	maxY := ScreenHeight - statusBarHeight
	visibleHeight := maxY - startY

	totalRows := (len(moves) + 1) / 2
	contentHeight := totalRows * rowHeight
	p.maxScrollY = max(0, contentHeight-visibleHeight)
	p.scrollY = min(p.scrollY, p.maxScrollY)

	startRow := p.scrollY / rowHeight
	y := startY - (p.scrollY % rowHeight)

	for row := startRow; row < totalRows && y <= maxY-rowHeight; row++ {
		if y >= startY {
			if row%2 == 1 {
				vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
					float32(PanelWidth-PanelPadding*2+8), rowHeight, moveRowAlt, false)
			}
			i := row * 2
			p.drawText(screen, fmt.Sprintf("%d.", row+1), x, y, textMuted)
			p.drawText(screen, moves[i], x+36, y, textPrimary)
			if i+1 < len(moves) {
				p.drawText(screen, moves[i+1], x+120, y, textPrimary)
			}
		}
		y += rowHeight
	}

	if p.maxScrollY > 0 {
		pct := float32(p.scrollY) / float32(p.maxScrollY)
		indicatorH := max(float32(visibleHeight)*float32(visibleHeight)/float32(contentHeight), 20)
		indicatorY := float32(startY) + pct*(float32(visibleHeight)-indicatorH)
		vector.DrawFilledRect(screen, float32(BoardSize+PanelWidth-8), indicatorY, 4, indicatorH, textMuted, false)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - statusBarHeight + 10
	x := BoardSize + PanelPadding

	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)

	username := p.game.Username()
	if len(username) > 12 {
		username = username[:12] + "..."
	}
	p.drawText(screen, username, x, statusY, textPrimary)

	sound := "Sound off"
	if p.game.SoundEnabled() {
		sound = "Sound on"
	}
	p.drawText(screen, sound, x+150, statusY, textSecondary)

	s := p.game.Session()
	status, c := fmt.Sprintf("%s to move", s.Turn()), color.Color(textPrimary)
	if _, ok := s.PendingPromotion(); ok {
		status, c = "Choose a promotion piece", statusPending
	}
	p.drawText(screen, status, x, statusY+22, c)

	b := s.Board()
	rights := fmt.Sprintf("Castling %s/%s", rightsLabel(b, board.White), rightsLabel(b, board.Black))
	p.drawText(screen, rights, x, statusY+44, textMuted)
}

// rightsLabel names the rook homes that still allow castling for c.
func rightsLabel(b *board.Board, c board.Color) string {
	label := ""
	for _, sq := range b.CastlingRights(c).Squares() {
		label += sq.String()
	}
	if label == "" {
		return "-"
	}
	return label
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	drawText(screen, s, GetRegularFace(), float64(x), float64(y), c)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	drawTextCentered(screen, s, GetRegularFace(), float64(centerX), float64(centerY), c)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel and resizes the window to match.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	if p.collapsed {
		ebiten.SetWindowSize(BoardSize+CollapsedWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	}
}
