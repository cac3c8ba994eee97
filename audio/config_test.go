package audio

import (
	"testing"

	"github.com/lixenwraith/dodge/constants"
	"github.com/stretchr/testify/assert"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, constants.AudioSampleRate, cfg.SampleRate)
	assert.Equal(t, constants.AudioBufferDuration, cfg.Buffer)
}

func TestAudioConfigApplyEnv(t *testing.T) {
	t.Setenv("DODGE_AUDIO_ENABLED", "false")
	t.Setenv("DODGE_MASTER_VOLUME", "150")
	t.Setenv("DODGE_SAMPLE_RATE", "22050")

	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume, "volume is clamped to 1")
	assert.Equal(t, 22050, cfg.SampleRate)
}

func TestAudioConfigApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("DODGE_AUDIO_ENABLED", "maybe")
	t.Setenv("DODGE_MASTER_VOLUME", "loud")
	t.Setenv("DODGE_SAMPLE_RATE", "-5")

	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()

	assert.Equal(t, DefaultAudioConfig(), cfg)
}
