package terminal

import "github.com/gdamore/tcell/v2"

// keyToName maps tcell special keys to the identifiers used in key tables
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Backtab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",

	tcell.KeyUp:     "ArrowUp",
	tcell.KeyDown:   "ArrowDown",
	tcell.KeyLeft:   "ArrowLeft",
	tcell.KeyRight:  "ArrowRight",
	tcell.KeyHome:   "Home",
	tcell.KeyEnd:    "End",
	tcell.KeyPgUp:   "PageUp",
	tcell.KeyPgDn:   "PageDown",
	tcell.KeyInsert: "Insert",

	tcell.KeyF1:  "F1",
	tcell.KeyF2:  "F2",
	tcell.KeyF3:  "F3",
	tcell.KeyF4:  "F4",
	tcell.KeyF5:  "F5",
	tcell.KeyF6:  "F6",
	tcell.KeyF7:  "F7",
	tcell.KeyF8:  "F8",
	tcell.KeyF9:  "F9",
	tcell.KeyF10: "F10",
	tcell.KeyF11: "F11",
	tcell.KeyF12: "F12",

	tcell.KeyCtrlC: "Ctrl+C",
	tcell.KeyCtrlD: "Ctrl+D",
	tcell.KeyCtrlL: "Ctrl+L",
	tcell.KeyCtrlQ: "Ctrl+Q",
	tcell.KeyCtrlR: "Ctrl+R",
	tcell.KeyCtrlZ: "Ctrl+Z",
}

// KeyName returns the identifier for a key event, or "" if it has none
// Printable keys map to their rune ("w", "W"); space is "Space"
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "Space"
		}
		return string(ev.Rune())
	}
	return keyToName[ev.Key()]
}
