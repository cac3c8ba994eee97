package input

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/dodge/component"
)

// KeyTable maps each logical action to the raw identifiers that trigger it
// Identifiers are whatever the key-event source emits ("w", "ArrowUp", "Ctrl+C")
type KeyTable map[Action][]string

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		ActionP1Up:    {"w", "W"},
		ActionP1Down:  {"s", "S"},
		ActionP1Left:  {"a", "A"},
		ActionP1Right: {"d", "D"},

		ActionP2Up:    {"ArrowUp"},
		ActionP2Down:  {"ArrowDown"},
		ActionP2Left:  {"ArrowLeft"},
		ActionP2Right: {"ArrowRight"},

		ActionRestart:          {"r", "R", "Enter"},
		ActionToggleVisibility: {"v", "V"},
		ActionQuit:             {"q", "Q", "Escape", "Ctrl+C"},
	}
}

// Clone returns a deep copy
func (kt KeyTable) Clone() KeyTable {
	out := make(KeyTable, len(kt))
	for a, ids := range kt {
		out[a] = slices.Clone(ids)
	}
	return out
}

// Merge returns a copy of kt with override's actions replacing kt's
// An action overridden with an empty list is unbound
func (kt KeyTable) Merge(override KeyTable) KeyTable {
	result := kt.Clone()
	for a, ids := range override {
		if len(ids) == 0 {
			delete(result, a)
			continue
		}
		result[a] = slices.Clone(ids)
	}
	return result
}

// Bindings is a KeyTable resolved once at configuration time
// Movement lookups are indexed by actor and direction, commands by identifier
type Bindings struct {
	moves    [component.ActorCount][DirectionCount][]string
	commands map[string]Action
	owner    map[string]Action
}

// Resolve validates a KeyTable and builds lookup tables
// An identifier bound to two different actions is rejected
func Resolve(kt KeyTable) (*Bindings, error) {
	b := &Bindings{
		commands: make(map[string]Action),
		owner:    make(map[string]Action),
	}

	// Deterministic order so duplicate errors are stable
	actions := make([]Action, 0, len(kt))
	for a := range kt {
		actions = append(actions, a)
	}
	slices.Sort(actions)

	for _, a := range actions {
		if a == ActionNone || a >= actionCount {
			return nil, fmt.Errorf("invalid action %d in key table", a)
		}
		for _, id := range kt[a] {
			if id == "" {
				return nil, fmt.Errorf("action %s: empty key identifier", a)
			}
			if prev, dup := b.owner[id]; dup && prev != a {
				return nil, fmt.Errorf("key %q bound to both %s and %s", id, prev, a)
			}
			b.owner[id] = a

			if actor, dir, ok := a.Movement(); ok {
				if !slices.Contains(b.moves[actor][dir], id) {
					b.moves[actor][dir] = append(b.moves[actor][dir], id)
				}
				continue
			}
			b.commands[id] = a
		}
	}

	return b, nil
}

// MustResolve panics on an invalid table, for static defaults
func MustResolve(kt KeyTable) *Bindings {
	b, err := Resolve(kt)
	if err != nil {
		panic(err)
	}
	return b
}

// Held reports whether any identifier bound to the actor's direction is held
func (b *Bindings) Held(s *State, actor component.ActorID, dir Direction) bool {
	for _, id := range b.moves[actor][dir] {
		if s.IsHeld(id) {
			return true
		}
	}
	return false
}

// Command resolves a host command identifier
func (b *Bindings) Command(id string) (Action, bool) {
	a, ok := b.commands[id]
	return a, ok
}

// Lookup returns the action bound to an identifier
func (b *Bindings) Lookup(id string) (Action, bool) {
	a, ok := b.owner[id]
	return a, ok
}

// Keys returns the identifiers bound to a movement action
func (b *Bindings) Keys(actor component.ActorID, dir Direction) []string {
	return slices.Clone(b.moves[actor][dir])
}
