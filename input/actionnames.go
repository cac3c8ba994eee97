package input

import "strings"

// actionNames maps actions to canonical config names
var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionP1Up:             "p1_up",
	ActionP1Down:           "p1_down",
	ActionP1Left:           "p1_left",
	ActionP1Right:          "p1_right",
	ActionP2Up:             "p2_up",
	ActionP2Down:           "p2_down",
	ActionP2Left:           "p2_left",
	ActionP2Right:          "p2_right",
	ActionRestart:          "restart",
	ActionToggleVisibility: "toggle_visibility",
	ActionQuit:             "quit",
}

// actionRegistry is the reverse lookup used by the keymap loader
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		actionRegistry[name] = a
	}
}

// String returns the canonical config name
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionByName resolves a config name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
