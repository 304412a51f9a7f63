package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chesstrack/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 380
	SettingsHeight = 360
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// SettingsModal edits the user preferences.
type SettingsModal struct {
	visible bool
	x, y    int

	usernameInput   *TextInput
	flipCheckbox    *Checkbox
	controlCheckbox *Checkbox
	soundCheckbox   *Checkbox
	saveBtn         *ModalButton
	cancelBtn       *ModalButton

	// Preferences being edited; fields not shown here are carried through.
	editing *storage.UserPreferences
	onSave  func(prefs *storage.UserPreferences)
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - SettingsWidth) / 2,
		y: (ScreenHeight - SettingsHeight) / 2,
	}
	sm.createWidgets()
	return sm
}

func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	inputY := sm.y + 84
	sm.usernameInput = NewTextInput(contentX, inputY, contentW, 36, "Enter your name", 20)

	checkY := inputY + 64
	sm.flipCheckbox = NewCheckbox(contentX, checkY, "Black at the bottom", false)
	sm.controlCheckbox = NewCheckbox(contentX, checkY+34, "Show controlled squares", false)
	sm.soundCheckbox = NewCheckbox(contentX, checkY+68, "Sound effects", true)

	const btnW, btnH, btnSpacing = 100, 38, 12
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	sm.cancelBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-btnSpacing, btnY, btnW, btnH, "Cancel", false, nil)
	sm.saveBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Save", true, nil)
}

// Show opens the modal on a copy of prefs. onSave receives the edited copy.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(*storage.UserPreferences)) {
	edited := *prefs
	sm.editing = &edited
	sm.onSave = onSave
	sm.visible = true

	sm.usernameInput.Value = prefs.Username
	sm.flipCheckbox.Checked = prefs.Flipped
	sm.controlCheckbox.Checked = prefs.ShowControl
	sm.soundCheckbox.Checked = prefs.SoundEnabled

	sm.saveBtn.OnClick = sm.handleSave
	sm.cancelBtn.OnClick = sm.Hide
}

// Hide closes the modal without saving.
func (sm *SettingsModal) Hide() {
	sm.visible = false
	sm.usernameInput.SetFocused(false)
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := sm.editing
	prefs.Username = sm.usernameInput.Value
	if prefs.Username == "" {
		prefs.Username = storage.DefaultPreferences().Username
	}
	prefs.Flipped = sm.flipCheckbox.Checked
	prefs.ShowControl = sm.controlCheckbox.Checked
	prefs.SoundEnabled = sm.soundCheckbox.Checked

	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// Update handles input for the settings modal. The modal consumes all input.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	focused := sm.usernameInput.IsFocused()
	if IsKeyJustPressed(ebiten.KeyEscape) && !focused {
		sm.Hide()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) && !focused {
		sm.handleSave()
		return true
	}

	sm.usernameInput.Update(input)
	sm.flipCheckbox.Update(input)
	sm.controlCheckbox.Update(input)
	sm.soundCheckbox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if any button in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.flipCheckbox.hovered || sm.controlCheckbox.hovered || sm.soundCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	drawModalFrame(screen, sm.x, sm.y, SettingsWidth, SettingsHeight)
	vector.DrawFilledRect(screen, float32(sm.x), float32(sm.y), float32(SettingsWidth), 44, modalHeader, false)
	drawTextCentered(screen, "Settings", GetBoldFace(), float64(sm.x+SettingsWidth/2), float64(sm.y+22), textPrimary)

	contentX := float64(sm.x + SettingsPadX)
	drawText(screen, "Your Name", GetRegularFace(), contentX, float64(sm.usernameInput.Y-22), textMuted)
	drawText(screen, "Board", GetRegularFace(), contentX, float64(sm.flipCheckbox.Y-24), textMuted)

	sm.usernameInput.Draw(screen)
	sm.flipCheckbox.Draw(screen)
	sm.controlCheckbox.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.cancelBtn.Draw(screen)
	sm.saveBtn.Draw(screen)
}
