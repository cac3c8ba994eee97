package engine

import (
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/physics"
)

// Step advances both actors by one tick and reports whether any of them moved
// Each held direction contributes ±speed on its axis; opposing directions cancel arithmetically.
// Coordinates are then clamped to [radius, size-radius]. Movement is exact coordinate inequality.
// Frozen (no-op) while the phase is Over
func Step(in *input.State, b *input.Bindings, actors *component.Actors, field component.Field, phase Phase) bool {
	if phase == PhaseOver {
		return false
	}

	moved := false
	for i := range actors {
		a := &actors[i]
		id := component.ActorID(i)
		before := a.Pos

		var dx, dy float64
		for dir := input.Direction(0); dir < input.DirectionCount; dir++ {
			if !b.Held(in, id, dir) {
				continue
			}
			ux, uy := dir.Delta()
			dx += ux * a.Speed
			dy += uy * a.Speed
		}

		a.Pos = physics.ClampToField(component.Vec2{X: a.Pos.X + dx, Y: a.Pos.Y + dy}, a.Radius, field)
		if a.Pos != before {
			moved = true
		}
	}

	return moved
}
