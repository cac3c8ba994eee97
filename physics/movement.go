package physics

import (
	"math"

	"github.com/lixenwraith/dodge/component"
)

// Clamp bounds v to [lo, hi] by min/max composition, no wrap or bounce
// When lo > hi (disc wider than the field) the result pins to hi
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampToField keeps a disc of radius r fully inside the field
func ClampToField(p component.Vec2, r float64, f component.Field) component.Vec2 {
	return component.Vec2{
		X: Clamp(p.X, r, f.Width-r),
		Y: Clamp(p.Y, r, f.Height-r),
	}
}

// InField reports whether a disc of radius r satisfies the clamp invariant
func InField(p component.Vec2, r float64, f component.Field) bool {
	return p.X >= r && p.X <= f.Width-r && p.Y >= r && p.Y <= f.Height-r
}
