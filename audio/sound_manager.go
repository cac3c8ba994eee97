package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and the proximity hum
// The device is acquired by Init, which the session calls lazily on first input
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig

	volume *effects.Volume
	ctrl   *beep.Ctrl

	initialized bool
	level       float64 // last requested proximity volume, before master gain
}

// NewSoundManager creates a sound manager; nothing touches the device until Init
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{config: cfg}
}

// Init opens the speaker and starts the hum at zero gain
// Safe to call again after success (no-op)
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sr, sr.N(sm.config.Buffer)); err != nil {
		return err
	}

	tone := NewToneGenerator(sr, sm.config.ToneHz, sm.config.PulseHz)
	sm.volume = &effects.Volume{Streamer: tone, Base: 2}
	setGain(sm.volume, sm.level*sm.config.MasterVolume)
	sm.ctrl = &beep.Ctrl{Streamer: sm.volume, Paused: false}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// SetVolume sets the hum gain, expected in [0, 0.5]
// Before Init the value is only remembered
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.level = max(v, 0)
	if !sm.initialized {
		return
	}

	speaker.Lock()
	setGain(sm.volume, sm.level*sm.config.MasterVolume)
	speaker.Unlock()
}

// Level returns the last requested volume
func (sm *SoundManager) Level() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.level
}

// IsInitialized reports whether the speaker is held
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close stops the hum and releases the speaker, no-op if never initialized
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()

	sm.ctrl = nil
	sm.volume = nil
	sm.initialized = false
}

// setGain maps a linear gain onto a base-2 effects.Volume
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}
