package audio

import "github.com/lixenwraith/dodge/constants"

// ProximityCutoff returns the distance at which the hum goes silent
func ProximityCutoff(diagonal float64) float64 {
	return constants.ProximityCutoffRatio * diagonal
}

// ProximityVolume maps actor separation to a gain in [0, 0.5]
// Quadratic falloff: n = 1 - d/cutoff, volume = 0.5·n², zero at and beyond cutoff
// Holds no device state; the caller pushes the result to a sink
func ProximityVolume(distance, diagonal float64) float64 {
	cutoff := ProximityCutoff(diagonal)
	if cutoff <= 0 || distance >= cutoff {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	n := 1 - distance/cutoff
	return constants.ProximityMaxVolume * n * n
}
