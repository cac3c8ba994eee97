package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is an endless hum: a sine fundamental plus a soft octave, under a slow tremolo
// Unity-ish amplitude; loudness is applied downstream by effects.Volume
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pulseHz float64
	pos     int
}

// NewToneGenerator creates a hum generator
func NewToneGenerator(sr beep.SampleRate, freq, pulseHz float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		pulseHz: pulseHz,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		fund := 0.6 * math.Sin(2*math.Pi*g.freq*t)
		octave := 0.2 * math.Sin(2*math.Pi*g.freq*2*t)

		// Tremolo between 0.6 and 1.0
		tremolo := 0.8 + 0.2*math.Sin(2*math.Pi*g.pulseHz*t)

		sample := (fund + octave) * tremolo

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
