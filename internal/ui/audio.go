package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hailam/chesstrack/internal/board"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCastle
	SoundPromote
	SoundInvalid
	SoundNewGame
)

const sampleRate = 44100

// soundFor picks the effect of an applied move.
func soundFor(m board.Move, captured bool) SoundType {
	switch {
	case m.Type.IsCastle():
		return SoundCastle
	case m.Type.Promotion != board.NoPieceType:
		return SoundPromote
	case captured || m.Type.Kind == board.PawnEnPassantKind:
		return SoundCapture
	default:
		return SoundMove
	}
}

// AudioManager plays procedurally generated effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager. Only one audio context may exist per process.
func NewAudioManager() *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  generateSounds(),
		enabled: true,
		volume:  0.5,
	}
}

// generateSounds synthesizes one PCM clip per effect.
func generateSounds() map[SoundType][]byte {
	return map[SoundType][]byte{
		SoundMove:    generateClick(440, 0.08, 0.3),
		SoundCapture: generateClick(330, 0.12, 0.5),
		SoundCastle: concatPCM(
			generateClick(400, 0.06, 0.3),
			silence(0.05),
			generateClick(440, 0.06, 0.24),
		),
		SoundPromote: generateChord([]float64{523.25, 659.25, 783.99}, 0.3, 0.4),
		SoundInvalid: generateBuzz(150, 0.1, 0.3),
		SoundNewGame: generateChord([]float64{261.63, 329.63, 392.00}, 0.4, 0.5),
	}
}

// writeSample stores a 16-bit stereo frame.
func writeSample(data []byte, i int, v float64) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := int16(v * 32767)
	data[i*4] = byte(s)
	data[i*4+1] = byte(s >> 8)
	data[i*4+2] = byte(s)
	data[i*4+3] = byte(s >> 8)
}

// generateClick creates a short percussive click.
func generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		writeSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// generateBuzz creates a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		writeSample(data, i, wave*envelope*amplitude*0.5)
	}
	return data
}

// generateChord mixes freqs with a fade in and out.
func generateChord(freqs []float64, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration

		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.7 {
			envelope = (1.0 - progress) / 0.3
		}

		sample := 0.0
		for _, f := range freqs {
			sample += math.Sin(2 * math.Pi * f * t)
		}
		writeSample(data, i, sample/float64(len(freqs))*envelope*amplitude)
	}
	return data
}

func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concatPCM(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Play plays a sound effect. Each call gets its own player so effects may overlap.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
