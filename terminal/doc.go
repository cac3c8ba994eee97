// Package terminal turns tcell key events into held-key edges for the game session.
//
// Terminals report presses and auto-repeats but never releases, so a key counts as
// held until no press or repeat has arrived for the hold window. Every edge and
// command is posted to the scheduler goroutine; the session never sees another thread.
package terminal
