package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testField = component.Field{Width: 500, Height: 500}

func stepFixture() (*input.State, *input.Bindings, component.Actors) {
	return input.NewState(), input.MustResolve(input.DefaultKeyTable()), DefaultActors()
}

// TestStepDownRightScenario moves P1 four ticks down+right from (100,100)
func TestStepDownRightScenario(t *testing.T) {
	in, b, actors := stepFixture()
	in.Press("s")
	in.Press("d")

	for i := 0; i < 4; i++ {
		assert.True(t, Step(in, b, &actors, testField, PhaseNotStarted))
	}

	assert.Equal(t, component.Vec2{X: 112, Y: 112}, actors[component.Actor1].Pos)
	assert.Equal(t, component.Vec2{X: 400, Y: 400}, actors[component.Actor2].Pos, "P2 had no input")
}

// TestStepOpposingKeysCancel verifies up+down and left+right yield zero displacement
func TestStepOpposingKeysCancel(t *testing.T) {
	in, b, actors := stepFixture()
	in.Press("w")
	in.Press("s")
	in.Press("ArrowLeft")
	in.Press("ArrowRight")

	moved := Step(in, b, &actors, testField, PhaseNotStarted)

	assert.False(t, moved)
	assert.Equal(t, DefaultActors(), actors)
}

// TestStepAliasesApplyOnce verifies two identifiers for one action do not double the speed
func TestStepAliasesApplyOnce(t *testing.T) {
	in, b, actors := stepFixture()
	in.Press("w")
	in.Press("W")

	Step(in, b, &actors, testField, PhaseRunning)
	assert.Equal(t, 97.0, actors[component.Actor1].Pos.Y)
}

// TestStepFrozenWhenOver verifies no movement in PhaseOver
func TestStepFrozenWhenOver(t *testing.T) {
	in, b, actors := stepFixture()
	in.Press("d")

	assert.False(t, Step(in, b, &actors, testField, PhaseOver))
	assert.Equal(t, DefaultActors(), actors)
}

// TestStepPinnedAtWallIsNotMovement verifies a clamped no-op does not count as displacement
func TestStepPinnedAtWallIsNotMovement(t *testing.T) {
	in, b, actors := stepFixture()
	actors[component.Actor1].Pos = component.Vec2{X: 15, Y: 15}
	in.Press("a")
	in.Press("w")

	assert.False(t, Step(in, b, &actors, testField, PhaseNotStarted))
	assert.Equal(t, component.Vec2{X: 15, Y: 15}, actors[component.Actor1].Pos)
}

// TestStepClampsPartialMove verifies a move that would overshoot lands on the boundary
func TestStepClampsPartialMove(t *testing.T) {
	in, b, actors := stepFixture()
	actors[component.Actor2].Pos = component.Vec2{X: 484, Y: 16}
	in.Press("ArrowRight")
	in.Press("ArrowUp")

	assert.True(t, Step(in, b, &actors, testField, PhaseRunning))
	assert.Equal(t, component.Vec2{X: 485, Y: 15}, actors[component.Actor2].Pos)
}

// TestStepClampInvariant drives random input and checks both actors stay in bounds every tick
func TestStepClampInvariant(t *testing.T) {
	in, b, actors := stepFixture()
	rng := rand.New(rand.NewSource(42))

	keys := []string{"w", "a", "s", "d", "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight"}

	for tick := 0; tick < 5000; tick++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			in.Press(k)
		} else {
			in.Release(k)
		}

		Step(in, b, &actors, testField, PhaseRunning)

		for _, a := range actors {
			require.True(t, physics.InField(a.Pos, a.Radius, testField),
				"tick %d: %s at (%.1f, %.1f) escaped the field", tick, a.ID, a.Pos.X, a.Pos.Y)
		}
	}
}
