package engine

// Phase is the discrete session state
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns the display name
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// validTransitions is the phase graph
// NotStarted -> Over exists because collision is checked every tick regardless of phase
var validTransitions = map[Phase][]Phase{
	PhaseNotStarted: {PhaseRunning, PhaseOver},
	PhaseRunning:    {PhaseOver, PhaseNotStarted},
	PhaseOver:       {PhaseNotStarted},
}

// CanTransition reports whether from -> to is an edge of the phase graph
// Running -> NotStarted and NotStarted -> NotStarted are only taken under RestartAlways
func CanTransition(from, to Phase) bool {
	if from == to {
		return from == PhaseNotStarted
	}
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// RestartPolicy decides what Restart does outside PhaseOver
type RestartPolicy uint8

const (
	// RestartWhenOver ignores restart unless the round is over
	RestartWhenOver RestartPolicy = iota
	// RestartAlways resets from any phase
	RestartAlways
)

// String returns the config name
func (p RestartPolicy) String() string {
	if p == RestartAlways {
		return "always"
	}
	return "when_over"
}

// ParseRestartPolicy resolves a config name
func ParseRestartPolicy(s string) (RestartPolicy, bool) {
	switch s {
	case "", "when_over":
		return RestartWhenOver, true
	case "always":
		return RestartAlways, true
	default:
		return RestartWhenOver, false
	}
}
