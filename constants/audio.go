package constants

import "time"

// Proximity audio mapping
const (
	// ProximityCutoffRatio is the fraction of the field diagonal beyond which the hum is silent
	ProximityCutoffRatio = 0.7

	// ProximityMaxVolume is the gain at zero distance
	ProximityMaxVolume = 0.5
)

// Audio device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ProximityToneHz is the fundamental of the proximity hum
	ProximityToneHz = 110.0

	// ProximityPulseHz is the tremolo rate layered over the hum
	ProximityPulseHz = 4.0
)
