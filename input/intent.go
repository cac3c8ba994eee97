package input

import "github.com/lixenwraith/dodge/component"

// Direction is one of the four movement axes of an actor
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionCount is the number of bound directions per actor
const DirectionCount = 4

// Action discriminates logical controls
// Movement actions are consumed by the simulation; the rest are host commands
type Action uint8

const (
	ActionNone Action = iota

	// Actor 1 movement
	ActionP1Up
	ActionP1Down
	ActionP1Left
	ActionP1Right

	// Actor 2 movement
	ActionP2Up
	ActionP2Down
	ActionP2Left
	ActionP2Right

	// Host commands
	ActionRestart
	ActionToggleVisibility
	ActionQuit

	actionCount
)

// MoveAction returns the movement action for an actor and direction
func MoveAction(actor component.ActorID, dir Direction) Action {
	return ActionP1Up + Action(actor)*DirectionCount + Action(dir)
}

// Movement decomposes a movement action, ok is false for commands and ActionNone
func (a Action) Movement() (actor component.ActorID, dir Direction, ok bool) {
	if a < ActionP1Up || a > ActionP2Right {
		return 0, 0, false
	}
	off := a - ActionP1Up
	return component.ActorID(off / DirectionCount), Direction(off % DirectionCount), true
}

// IsCommand reports whether the action is handled by the host rather than the simulation
func (a Action) IsCommand() bool {
	return a >= ActionRestart && a < actionCount
}

// Delta returns the unit displacement of a direction, +y is down
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
