package ui

import (
	"math"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundSelect SoundType = iota
	SoundMove
	SoundCapture
	SoundError
)

const sampleRate = 44100

// AudioManager plays short procedural cues for clicks.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.sounds[SoundSelect] = pcm(0.05, func(t float64) float64 {
		return math.Sin(2*math.Pi*660*t) * math.Exp(-t*60) * 0.2
	})
	am.sounds[SoundMove] = pcm(0.08, func(t float64) float64 {
		return math.Sin(2*math.Pi*440*t) * math.Exp(-t*30) * 0.3
	})
	am.sounds[SoundCapture] = pcm(0.12, func(t float64) float64 {
		wave := math.Sin(2*math.Pi*330*t) + 0.4*math.Sin(2*math.Pi*495*t)
		return wave * math.Exp(-t*25) * 0.35
	})
	am.sounds[SoundError] = pcm(0.1, func(t float64) float64 {
		wave := math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
		return wave * (1 - t/0.1) * 0.15
	})
	return am
}

// pcm samples wave for duration seconds into 16-bit stereo.
func pcm(duration float64, wave func(t float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		v := max(-1, min(1, wave(float64(i)/sampleRate)))
		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// SoundFor maps a click outcome to its cue. Ignored clicks are silent.
func SoundFor(res board.ClickResult) (SoundType, bool) {
	switch res.Action {
	case board.ClickSelected:
		return SoundSelect, true
	case board.ClickMoved:
		if res.IsCapture() {
			return SoundCapture, true
		}
		return SoundMove, true
	}
	return 0, false
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A new player per cue lets sounds overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
