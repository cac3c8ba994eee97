package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldDiagonal(t *testing.T) {
	f := Field{Width: 500, Height: 500}
	assert.InDelta(t, 500*math.Sqrt2, f.Diagonal(), 1e-9)

	f = Field{Width: 3, Height: 4}
	assert.Equal(t, 5.0, f.Diagonal())
}

func TestActorIDString(t *testing.T) {
	assert.Equal(t, "P1", Actor1.String())
	assert.Equal(t, "P2", Actor2.String())
	assert.Equal(t, "P?", ActorID(7).String())
}
