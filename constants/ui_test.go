package constants

import (
	"math"
	"testing"
	"time"
)

// TestDefaultActorsFitAndSeparate verifies the start positions are playable
func TestDefaultActorsFitAndSeparate(t *testing.T) {
	starts := [][2]float64{{Actor1StartX, Actor1StartY}, {Actor2StartX, Actor2StartY}}
	for _, p := range starts {
		if p[0]-ActorRadius < 0 || p[0]+ActorRadius > FieldWidth || p[1]-ActorRadius < 0 || p[1]+ActorRadius > FieldHeight {
			t.Errorf("Expected start (%v, %v) to fit the field", p[0], p[1])
		}
	}

	d := math.Hypot(Actor2StartX-Actor1StartX, Actor2StartY-Actor1StartY)
	if d <= 2*ActorRadius {
		t.Errorf("Expected start positions apart, got distance %v", d)
	}
}

func TestHoldWindowTiming(t *testing.T) {
	if KeyHoldWindow <= KeyHoldCheckInterval {
		t.Errorf("Expected hold window %v above check interval %v", KeyHoldWindow, KeyHoldCheckInterval)
	}
	if FrameUpdateInterval > time.Second/DefaultTickRate {
		t.Errorf("Expected frame interval %v within one tick at %d Hz", FrameUpdateInterval, DefaultTickRate)
	}
}
