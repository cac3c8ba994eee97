package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatePressRelease(t *testing.T) {
	s := NewState()

	assert.False(t, s.IsHeld("w"))

	s.Press("w")
	s.Press("w")
	assert.True(t, s.IsHeld("w"))
	assert.Equal(t, 1, s.Len(), "press must be idempotent")

	s.Release("w")
	assert.False(t, s.IsHeld("w"))

	// Releasing an absent identifier is a silent no-op
	s.Release("w")
	s.Release("never-pressed")
	assert.Equal(t, 0, s.Len())
}

func TestStateClear(t *testing.T) {
	s := NewState()
	s.Press("ArrowUp")
	s.Press("d")
	s.Press("anything")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsHeld("d"))
}
