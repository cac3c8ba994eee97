package input

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// KeyList is one keymap entry; YAML accepts a single identifier or a sequence
type KeyList []string

// UnmarshalYAML accepts `p1_up: w` as well as `p1_up: [w, W]`
func (kl *KeyList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*kl = KeyList{s}
		return nil
	case yaml.SequenceNode:
		var ids []string
		if err := node.Decode(&ids); err != nil {
			return err
		}
		*kl = ids
		return nil
	default:
		return fmt.Errorf("line %d: key list must be a string or sequence", node.Line)
	}
}

// ParseKeyTable converts a name-keyed keymap into a sparse override KeyTable
// Returns error on unknown action names
func ParseKeyTable(raw map[string]KeyList) (KeyTable, error) {
	kt := make(KeyTable, len(raw))
	for name, ids := range raw {
		a, ok := ActionByName(name)
		if !ok || a == ActionNone {
			return nil, fmt.Errorf("keymap: unknown action: %q", name)
		}
		kt[a] = []string(ids)
	}
	return kt, nil
}

// LoadKeyConfig parses a standalone YAML keymap document
func LoadKeyConfig(data []byte) (KeyTable, error) {
	var raw map[string]KeyList
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseKeyTable(raw)
}
