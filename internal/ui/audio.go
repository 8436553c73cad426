package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundSelect SoundType = iota
	SoundMove
	SoundCapture
	SoundCheck
	SoundRejected
)

const sampleRate = 44100

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		sounds:  generateSounds(),
		enabled: enabled,
		volume:  0.5,
	}
	if enabled {
		am.context = audio.NewContext(sampleRate)
	}
	return am
}

// generateSounds creates procedural sounds for each event type.
func generateSounds() map[SoundType][]byte {
	return map[SoundType][]byte{
		SoundSelect:   click(660, 0.04, 0.15),
		SoundMove:     click(440, 0.08, 0.3),
		SoundCapture:  click(330, 0.12, 0.5),
		SoundCheck:    tone(880, 0.15, 0.4),
		SoundRejected: buzz(150, 0.1, 0.3),
	}
}

// synth renders duration seconds of 16-bit stereo PCM from a sample function
// taking the time in seconds and the progress in [0, 1).
func synth(duration float64, sample func(t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := math.Max(-1, math.Min(1, sample(t, t/duration)))

		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive knock, like wood on wood.
func click(freq, duration, amplitude float64) []byte {
	return synth(duration, func(t, _ float64) float64 {
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
	})
}

// tone is a sine with a short attack and a linear decay.
func tone(freq, duration, amplitude float64) []byte {
	return synth(duration, func(t, progress float64) float64 {
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * envelope * amplitude
	})
}

// buzz is a low rough tone used for rejected clicks.
func buzz(freq, duration, amplitude float64) []byte {
	return synth(duration, func(t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * (1.0 - progress) * amplitude * 0.5
	})
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled || am.context == nil {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A fresh player per sound lets effects overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}
