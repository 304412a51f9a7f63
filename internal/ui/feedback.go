package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chesstrack/internal/board"
	"github.com/hailam/chesstrack/internal/game"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// timed is the lifetime shared by toasts and animations.
type timed struct {
	start    time.Time
	duration time.Duration
}

func startTimed(d time.Duration) timed {
	return timed{start: time.Now(), duration: d}
}

// progress is the elapsed share of the lifetime at now, 1 or more once expired.
func (t timed) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	return now.Sub(t.start).Seconds() / t.duration.Seconds()
}

// prune drops the items whose lifetime ended before now, in place.
func prune[T interface{ progress(time.Time) float64 }](items []T, now time.Time) []T {
	live := items[:0]
	for _, it := range items {
		if it.progress(now) < 1 {
			live = append(live, it)
		}
	}
	return live
}

// Toast is a notification message.
type Toast struct {
	timed
	Message string
	Type    ToastType
}

// ToastManager stacks up to maxStack toasts above the board.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast, dropping the oldest past maxStack.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{timed: startTimed(duration), Message: message, Type: toastType})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

func (tm *ToastManager) Update() {
	tm.toasts = prune(tm.toasts, time.Now())
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	now := time.Now()
	y := 50.0
	for _, t := range tm.toasts {
		alpha := fadeAlpha(now.Sub(t.start), t.duration, 200*time.Millisecond)
		bg, fg := toastColors(t.Type)
		bg.A = uint8(float64(bg.A) * alpha)
		fg.A = uint8(float64(fg.A) * alpha)

		w, h := MeasureText(t.Message, face)
		const padding = 12.0
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		drawText(screen, t.Message, face, x+padding, y+padding, fg)

		y += boxH + 8
	}
}

// fadeAlpha ramps from 0 to 1 over the first fade of the lifetime and back to 0 over the last.
func fadeAlpha(elapsed, lifetime, fade time.Duration) float64 {
	alpha := 1.0
	switch {
	case elapsed < fade:
		alpha = elapsed.Seconds() / fade.Seconds()
	case elapsed > lifetime-fade:
		alpha = (lifetime - elapsed).Seconds() / fade.Seconds()
	}
	return math.Max(0, math.Min(1, alpha))
}

func toastColors(tt ToastType) (bg, fg color.RGBA) {
	switch tt {
	case ToastWarning:
		return color.RGBA{180, 140, 20, 220}, color.RGBA{40, 30, 0, 255}
	case ToastError:
		return color.RGBA{180, 50, 50, 220}, color.RGBA{255, 255, 255, 255}
	case ToastSuccess:
		return color.RGBA{50, 150, 50, 220}, color.RGBA{255, 255, 255, 255}
	default:
		return color.RGBA{50, 100, 150, 220}, color.RGBA{255, 255, 255, 255}
	}
}

// shake wobbles the piece on a square after a rejected move.
type shake struct {
	timed
	square    board.Square
	intensity float64
}

// flash tints a square and fades out.
type flash struct {
	timed
	square board.Square
	color  color.RGBA
}

// AnimationManager runs the square shakes and flashes.
type AnimationManager struct {
	shakes  []*shake
	flashes []*flash
}

func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &shake{timed: startTimed(300 * time.Millisecond), square: sq, intensity: 8})
}

func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &flash{timed: startTimed(400 * time.Millisecond), square: sq, color: c})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()
	am.shakes = prune(am.shakes, now)
	am.flashes = prune(am.flashes, now)
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	now := time.Now()
	for _, s := range am.shakes {
		if s.square == sq {
			return shakeOffset(s.intensity, s.progress(now)), 0
		}
	}
	return 0, 0
}

// shakeOffset is a damped sine over progress in [0, 1).
func shakeOffset(intensity, progress float64) float64 {
	if progress < 0 || progress >= 1 {
		return 0
	}
	const decay, freq = 5.0, 40.0
	return intensity * math.Exp(-decay*progress) * math.Sin(freq*progress)
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	now := time.Now()
	size := float32(renderer.SquareSize())
	for _, f := range am.flashes {
		progress := f.progress(now)
		if progress >= 1 {
			continue
		}
		c := f.color
		c.A = uint8(float64(c.A) * (1 - progress))

		x, y := renderer.SquareToScreen(f.square)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

// FeedbackManager coordinates toasts, animations and sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager. audio may be nil for silent play.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      audio,
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Toasts returns the toast manager.
func (fm *FeedbackManager) Toasts() *ToastManager {
	return fm.toasts
}

// OnInvalidMove reports a rejected request.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square, reason game.InvalidMoveReason) {
	fm.toasts.Show(invalidMoveMessage(reason), ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	fm.audio.Play(SoundInvalid)
}

func invalidMoveMessage(reason game.InvalidMoveReason) string {
	switch reason {
	case game.ReasonNoPiece:
		return "No piece on that square"
	case game.ReasonNotYourTurn:
		return "Not your turn"
	case game.ReasonBlockedByOwnPiece:
		return "Square occupied by your piece"
	case game.ReasonInvalidPieceMovement:
		return "Invalid move for this piece"
	default:
		return "Invalid move"
	}
}

// OnMoveMade plays the effect of an applied move.
func (fm *FeedbackManager) OnMoveMade(m board.Move, captured bool) {
	fm.audio.Play(soundFor(m, captured))
	if m.Type.IsCastle() {
		fm.toasts.Show("Castled", ToastInfo, time.Second)
	}
}

// OnNewGame announces a fresh session.
func (fm *FeedbackManager) OnNewGame(archived bool) {
	msg := "New game"
	if archived {
		msg = "Game archived, new game started"
	}
	fm.toasts.Show(msg, ToastSuccess, 2*time.Second)
	fm.audio.Play(SoundNewGame)
}
