package ui

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
	"github.com/hailam/chesstrack/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Options configures a Game. Storage and Archive may be nil.
type Options struct {
	Storage *storage.Storage
	Archive *archive.Archive

	// StartFEN overrides the preferred start position of new games.
	StartFEN string

	// Resume continues the autosaved session when there is one.
	Resume bool
}

// Game implements ebiten.Game over a game.Session.
type Game struct {
	session *game.Session
	tracker *game.Tracker

	storage  *storage.Storage
	prefs    *storage.UserPreferences
	startFEN string

	// Drag state; dragSquare is NoSquare when nothing is dragged.
	dragSquare board.Square

	// Whether the pending promotion captures, for its sound.
	promotionCaptures bool

	renderer  *Renderer
	input     *InputHandler
	panel     *Panel
	feedback  *FeedbackManager
	audio     *AudioManager
	promotion *PromotionPicker

	settingsModal *SettingsModal
	welcomeScreen *WelcomeScreen
}

// NewGame creates the window state, resuming or starting a session.
func NewGame(opts Options) *Game {
	g := &Game{
		tracker:    &game.Tracker{Store: opts.Storage, Archive: opts.Archive},
		storage:    opts.Storage,
		dragSquare: board.NoSquare,
		renderer:   NewRenderer(BoardSize, SquareSize),
		input:      NewInputHandler(),
		audio:      NewAudioManager(),
		promotion:  NewPromotionPicker(),
	}
	g.feedback = NewFeedbackManager(g.audio)
	g.settingsModal = NewSettingsModal()
	g.welcomeScreen = NewWelcomeScreen()

	g.loadPreferences()
	g.startFEN = opts.StartFEN
	if g.startFEN == "" {
		g.startFEN = g.prefs.StartFEN
	}
	if g.startFEN == "" {
		g.startFEN = board.StartFEN
	}

	if opts.Resume {
		s, err := g.tracker.Resume()
		switch {
		case err == nil:
			g.session = s
			log.Printf("Resumed session with %d moves", len(s.Log()))
		case errors.Is(err, storage.ErrNoSession):
		default:
			log.Printf("Warning: Failed to resume session: %v", err)
		}
	}
	if g.session == nil {
		g.session = g.newSession()
	}

	g.panel = NewPanel(g)
	g.checkFirstLaunch()
	return g
}

// newSession starts from startFEN, falling back to the standard position when it does not load.
func (g *Game) newSession() *game.Session {
	s, err := game.NewFromFEN(g.startFEN)
	if err != nil {
		log.Printf("Warning: Bad start position %q: %v", g.startFEN, err)
		s, _ = game.NewFromFEN(board.StartFEN)
	}
	return s
}

// loadPreferences loads user preferences from storage and applies them.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage != nil {
		prefs, err := g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}
	g.applyPreferences()
}

func (g *Game) applyPreferences() {
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.audio.SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows the welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}
	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	g.welcomeScreen.Show(func(name string) {
		g.prefs.Username = name
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: Failed to mark first launch complete: %v", err)
		}
		g.savePreferences()
	})
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// Modals block everything below them.
	switch {
	case g.welcomeScreen.IsVisible():
		g.welcomeScreen.Update(g.input)
	case g.promotion.IsVisible():
		g.promotion.Update(g.input)
	case g.settingsModal.IsVisible():
		g.settingsModal.Update(g.input)
	default:
		g.handleKeys()
		if !g.panel.HandleInput(g.input) {
			g.handleBoardInput()
		}
	}

	g.updateCursor()
	return nil
}

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.clearSelection()
	case IsKeyJustPressed(ebiten.KeyEnter):
		g.DumpBoard()
	case IsKeyJustPressed(ebiten.KeyC):
		g.ToggleControl()
	case IsKeyJustPressed(ebiten.KeyF):
		g.ToggleFlip()
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyS):
		g.ToggleSound()
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var hovered bool
	switch {
	case g.welcomeScreen.IsVisible():
		hovered = g.welcomeScreen.AnyButtonHovered()
	case g.promotion.IsVisible():
		hovered = g.promotion.AnyButtonHovered()
	case g.settingsModal.IsVisible():
		hovered = g.settingsModal.AnyButtonHovered()
	default:
		hovered = g.panel.AnyButtonHovered()
	}

	if hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	b := g.session.Board()
	g.renderer.DrawBoard(screen)
	if g.prefs.ShowControl {
		g.renderer.DrawControl(screen, b, g.session.Turn().Other())
	}

	last, hasLast := g.session.LastMove()
	g.renderer.DrawHighlights(screen, g.session.Selected(), g.session.Targets(), last, hasLast)
	g.renderer.DrawPieces(screen, b, g.dragSquare, g.feedback.Animations())
	if g.dragSquare != board.NoSquare {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, b.PieceAt(g.dragSquare), mx, my)
	}

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen)

	g.promotion.Draw(screen, g.renderer)
	g.settingsModal.Draw(screen)
	g.welcomeScreen.Draw(screen)
}

// Layout returns the logical screen size; the width follows the panel state.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.panel != nil && g.panel.Collapsed() {
		return BoardSize + CollapsedWidth, ScreenHeight
	}
	return ScreenWidth, ScreenHeight
}

// handleBoardInput turns clicks and drags on the board into selections and move requests.
func (g *Game) handleBoardInput() {
	if g.input.IsRightJustPressed() {
		g.clearSelection()
		return
	}

	mx, my := g.input.MousePosition()

	if g.dragSquare != board.NoSquare && g.input.IsLeftJustReleased() {
		from := g.dragSquare
		g.dragSquare = board.NoSquare
		to := g.renderer.ScreenToSquare(mx, my)
		if to != board.NoSquare && to != from {
			g.attemptMove(from, to)
		}
		return
	}

	if !g.input.IsLeftJustPressed() {
		return
	}
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}

	selected := g.session.Selected()
	if selected != board.NoSquare && sq != selected && g.session.Explain(selected, sq) == game.ReasonNone {
		g.attemptMove(selected, sq)
		return
	}
	if g.session.Select(sq) {
		g.dragSquare = sq
		return
	}
	if selected != board.NoSquare {
		g.attemptMove(selected, sq)
		return
	}
	if p := g.session.Board().PieceAt(sq); !p.IsNone() {
		g.feedback.OnInvalidMove(sq, sq, game.ReasonNotYourTurn)
	}
}

// attemptMove requests from -> to and reports the outcome.
func (g *Game) attemptMove(from, to board.Square) {
	b := g.session.Board()
	mover := b.PieceAt(from)
	if reason := g.session.Explain(from, to); reason != game.ReasonNone {
		g.feedback.OnInvalidMove(from, to, reason)
		g.clearSelection()
		return
	}

	target := b.PieceAt(to)
	captures := !target.IsNone() && target.Color != mover.Color

	err := g.session.Move(from, to)
	var amb *board.AmbiguousMoveError
	switch {
	case errors.As(err, &amb):
		g.promotionCaptures = captures
		g.promotion.Show(mover.Color, g.completePromotion, g.cancelPromotion)
	case err != nil:
		log.Printf("[MOVE] %v%v rejected: %v", from, to, err)
		g.feedback.Toasts().Show(err.Error(), ToastError, 2*time.Second)
		g.clearSelection()
	default:
		g.afterMove(captures)
	}
}

func (g *Game) completePromotion(pt board.PieceType) {
	if err := g.session.Promote(pt); err != nil {
		log.Printf("[MOVE] promotion failed: %v", err)
		g.feedback.Toasts().Show(err.Error(), ToastError, 2*time.Second)
		return
	}
	g.afterMove(g.promotionCaptures)
}

func (g *Game) cancelPromotion() {
	g.session.CancelPromotion()
	g.clearSelection()
}

// afterMove plays feedback and autosaves.
func (g *Game) afterMove(captures bool) {
	if last, ok := g.session.LastMove(); ok {
		g.feedback.OnMoveMade(last, captures)
	}
	if err := g.tracker.Autosave(g.session); err != nil {
		log.Printf("Warning: Failed to autosave: %v", err)
	}
}

func (g *Game) clearSelection() {
	g.session.ClearSelection()
	g.dragSquare = board.NoSquare
}

// DumpBoard writes the engine state to the log.
func (g *Game) DumpBoard() {
	log.Printf("[DUMP] %s", g.session.Board().FEN())
	g.session.Board().Dump(log.Writer())
}

// NewGameAction archives the current session and starts a new one.
func (g *Game) NewGameAction() {
	id, err := g.tracker.Finish(g.session, g.prefs.Username, g.prefs.Username)
	if err != nil {
		log.Printf("Warning: Failed to finish session: %v", err)
	}

	g.session = g.newSession()
	g.clearSelection()
	g.promotion.Hide()
	g.feedback.OnNewGame(id != 0)
}

// ToggleFlip puts the other side at the bottom.
func (g *Game) ToggleFlip() {
	g.prefs.Flipped = !g.prefs.Flipped
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.savePreferences()
}

// ToggleControl shows or hides the opponent control overlay.
func (g *Game) ToggleControl() {
	g.prefs.ShowControl = !g.prefs.ShowControl
	g.savePreferences()
}

// ToggleSound mutes or unmutes the effects.
func (g *Game) ToggleSound() {
	g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	g.audio.SetEnabled(g.prefs.SoundEnabled)
	g.savePreferences()

	msg := "Sound off"
	if g.prefs.SoundEnabled {
		msg = "Sound on"
	}
	g.feedback.Toasts().Show(msg, ToastInfo, time.Second)
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.prefs, func(prefs *storage.UserPreferences) {
		g.prefs = prefs
		g.applyPreferences()
		g.savePreferences()
	})
}

func (g *Game) Session() *game.Session {
	return g.session
}

func (g *Game) Flipped() bool {
	return g.prefs.Flipped
}

func (g *Game) ShowControl() bool {
	return g.prefs.ShowControl
}

func (g *Game) SoundEnabled() bool {
	return g.prefs.SoundEnabled
}

func (g *Game) Username() string {
	return g.prefs.Username
}

// Close autosaves the session. Storage and archive handles belong to the caller.
func (g *Game) Close() {
	if err := g.tracker.Autosave(g.session); err != nil {
		log.Printf("Warning: Failed to autosave: %v", err)
	}
}
