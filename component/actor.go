package component

import "math"

// Vec2 is a position in field logical units
type Vec2 struct {
	X, Y float64
}

// Field is the fixed rectangle actors are clamped within
type Field struct {
	Width  float64
	Height float64
}

// Diagonal returns sqrt(w² + h²)
func (f Field) Diagonal() float64 {
	return math.Hypot(f.Width, f.Height)
}

// ActorID tags one of the two actors
type ActorID uint8

const (
	Actor1 ActorID = iota
	Actor2
)

// ActorCount is the fixed number of actors in a session
const ActorCount = 2

// String returns the short player label
func (id ActorID) String() string {
	switch id {
	case Actor1:
		return "P1"
	case Actor2:
		return "P2"
	default:
		return "P?"
	}
}

// Actor is a controllable disc
// Pos stays within [Radius, size-Radius] on both axes after every step
type Actor struct {
	ID     ActorID
	Pos    Vec2
	Speed  float64
	Radius float64
	Color  string // tcell color name, resolved by the renderer
}

// Actors is the pair owned by a session
type Actors [ActorCount]Actor
