package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/dodge/constants"
)

// AudioConfig holds speaker and hum settings
type AudioConfig struct {
	Enabled      bool          `yaml:"enabled"`
	MasterVolume float64       `yaml:"master_volume"`
	SampleRate   int           `yaml:"sample_rate"`
	Buffer       time.Duration `yaml:"buffer"`
	ToneHz       float64       `yaml:"tone_hz"`
	PulseHz      float64       `yaml:"pulse_hz"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
		Buffer:       constants.AudioBufferDuration,
		ToneHz:       constants.ProximityToneHz,
		PulseHz:      constants.ProximityPulseHz,
	}
}

// ApplyEnv overrides settings from environment variables
// Invalid values are ignored
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("DODGE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("DODGE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv("DODGE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}
