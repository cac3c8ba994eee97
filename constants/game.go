package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ElapsedCounterInterval is the period of the survival-time counter
	ElapsedCounterInterval = time.Second

	// SchedulerResolution is how often the scheduler loop checks job deadlines
	SchedulerResolution = 2 * time.Millisecond

	// DefaultTickRate is ticks per second when config omits it
	DefaultTickRate = 60
)

// Field dimensions in logical units
const (
	FieldWidth  = 500.0
	FieldHeight = 500.0
)

// Actor defaults, restored on every restart
const (
	Actor1StartX = 100.0
	Actor1StartY = 100.0
	Actor2StartX = 400.0
	Actor2StartY = 400.0

	ActorSpeed  = 3.0
	ActorRadius = 15.0

	Actor1Color = "blue"
	Actor2Color = "red"
)

// Input
const (
	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	// Shorter than most auto-repeat delays, so a held key pauses once before repeats start
	KeyHoldWindow = 120 * time.Millisecond

	// KeyHoldCheckInterval is how often expired holds are released
	KeyHoldCheckInterval = 10 * time.Millisecond

	// PostQueueSize is the scheduler's posted-closure buffer
	PostQueueSize = 256
)
