package physics

import (
	"testing"

	"github.com/lixenwraith/dodge/component"
	"github.com/stretchr/testify/assert"
)

func actorAt(x, y, r float64) component.Actor {
	return component.Actor{Pos: component.Vec2{X: x, Y: y}, Radius: r, Speed: 3}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b component.Actor
		want bool
	}{
		{"far apart", actorAt(100, 100, 15), actorAt(400, 400, 15), false},
		{"overlapping", actorAt(100, 100, 15), actorAt(110, 100, 15), true},
		{"same centre", actorAt(250, 250, 15), actorAt(250, 250, 15), true},
		// 3-4-5 triangle scaled by 6: distance exactly 30 == 15+15
		{"exact tangency", actorAt(100, 100, 15), actorAt(118, 124, 15), true},
		{"just apart", actorAt(100, 100, 15), actorAt(130.0001, 100, 15), false},
		{"tangent on axis", actorAt(100, 100, 15), actorAt(130, 100, 15), true},
		{"unequal radii", actorAt(0, 0, 5), actorAt(0, 24, 20), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collides(tc.a, tc.b))
			assert.Equal(t, tc.want, Collides(tc.b, tc.a), "collision must be symmetric")
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 30.0, Distance(component.Vec2{X: 100, Y: 100}, component.Vec2{X: 118, Y: 124}))
	assert.Equal(t, 0.0, Distance(component.Vec2{X: 7, Y: 7}, component.Vec2{X: 7, Y: 7}))
}
