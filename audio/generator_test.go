package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

// TestToneGeneratorRange verifies the hum stays within [-1, 1] and never ends
func TestToneGeneratorRange(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(44100), 110, 4)

	samples := make([][2]float64, 4096)
	for round := 0; round < 4; round++ {
		n, ok := g.Stream(samples)
		assert.True(t, ok)
		assert.Equal(t, len(samples), n)

		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1], "hum is mono")
		}
	}

	assert.NoError(t, g.Err())
}

// TestToneGeneratorNotSilent verifies the generator produces signal
func TestToneGeneratorNotSilent(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(44100), 220, 4)

	samples := make([][2]float64, 1024)
	g.Stream(samples)

	peak := 0.0
	for _, s := range samples {
		peak = max(peak, s[0], -s[0])
	}
	assert.Greater(t, peak, 0.1)
}
