package physics

import (
	"math"

	"github.com/lixenwraith/dodge/component"
)

// Distance returns the Euclidean distance between two centres
func Distance(a, b component.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Collides reports contact between two discs
// Closed condition: exact tangency (distance == rA+rB) is a collision
func Collides(a, b component.Actor) bool {
	return Distance(a.Pos, b.Pos) <= a.Radius+b.Radius
}
