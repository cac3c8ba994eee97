package input

// State is the set of raw control identifiers currently held down
// Mutated by key-event collaborators, read by the simulation step
// Not safe for concurrent use; the scheduler loop is the only writer
type State struct {
	held map[string]struct{}
}

// NewState creates an empty held set
func NewState() *State {
	return &State{held: make(map[string]struct{})}
}

// Press marks id as held, idempotent
func (s *State) Press(id string) {
	s.held[id] = struct{}{}
}

// Release clears id, no-op if absent
func (s *State) Release(id string) {
	delete(s.held, id)
}

// IsHeld reports membership
func (s *State) IsHeld(id string) bool {
	_, ok := s.held[id]
	return ok
}

// Clear releases everything
func (s *State) Clear() {
	clear(s.held)
}

// Len returns the number of held identifiers
func (s *State) Len() int {
	return len(s.held)
}
