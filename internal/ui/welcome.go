package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 400
	WelcomeHeight = 300
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// WelcomeScreen asks for a name on first launch.
type WelcomeScreen struct {
	visible bool
	x, y    int

	nameInput *TextInput
	startBtn  *ModalButton

	onComplete func(name string)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{
		x: (ScreenWidth - WelcomeWidth) / 2,
		y: (ScreenHeight - WelcomeHeight) / 2,
	}
	contentX := ws.x + WelcomePadX
	contentW := WelcomeWidth - WelcomePadX*2
	ws.nameInput = NewTextInput(contentX, ws.y+150, contentW, 40, "Enter your name", 20)

	const btnW, btnH = 160, 44
	ws.startBtn = NewModalButton(ws.x+(WelcomeWidth-btnW)/2, ws.y+WelcomeHeight-WelcomePadY-btnH, btnW, btnH, "Start Tracking", true, nil)
	return ws
}

// Show displays the welcome screen.
func (ws *WelcomeScreen) Show(onComplete func(name string)) {
	ws.visible = true
	ws.onComplete = onComplete
	ws.nameInput.Value = ""
	ws.nameInput.SetFocused(true)
	ws.startBtn.OnClick = ws.handleStart
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
	ws.nameInput.SetFocused(false)
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

func (ws *WelcomeScreen) handleStart() {
	name := ws.nameInput.Value
	if name == "" {
		name = "Player"
	}
	if ws.onComplete != nil {
		ws.onComplete(name)
	}
	ws.Hide()
}

// Update handles input for the welcome screen. It consumes all input.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		ws.handleStart()
		return true
	}
	ws.nameInput.Update(input)
	ws.startBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if the start button is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	return ws.visible && ws.startBtn.IsHovered()
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image) {
	if !ws.visible {
		return
	}

	drawModalFrame(screen, ws.x, ws.y, WelcomeWidth, WelcomeHeight)
	ws.drawIcon(screen)

	centerX := float64(ws.x + WelcomeWidth/2)
	drawTextCentered(screen, "CHESSTRACK", GetFaceWithSize(24), centerX, float64(ws.y+76), textPrimary)
	drawTextCentered(screen, "Welcome! Who is at the board?", GetRegularFace(), centerX, float64(ws.y+106), textSecondary)
	drawText(screen, "Your Name", GetRegularFace(), float64(ws.x+WelcomePadX), float64(ws.nameInput.Y-20), textSecondary)

	ws.nameInput.Draw(screen)
	ws.startBtn.Draw(screen)
}

// drawIcon draws a small king as decoration.
func (ws *WelcomeScreen) drawIcon(screen *ebiten.Image) {
	cx := float32(ws.x + WelcomeWidth/2)
	y := float32(ws.y + 24)

	vector.DrawFilledCircle(screen, cx, y+8, 6, accentColor, false)
	vector.DrawFilledRect(screen, cx-8, y+10, 16, 14, accentColor, false)
	vector.DrawFilledRect(screen, cx-1, y-2, 3, 10, accentColor, false)
	vector.DrawFilledRect(screen, cx-4, y+2, 9, 3, accentColor, false)
}
