package constants

// Terminal layout
const (
	// BorderSize is the frame drawn around the field on each side
	BorderSize = 1

	// StatusBarHeight is the rows reserved below the field
	StatusBarHeight = 1

	// DebugHUDHeight is the rows reserved above the field when the debug HUD is on
	DebugHUDHeight = 1

	// VolumeBarWidth is the cells used by the status bar volume meter
	VolumeBarWidth = 10
)

// Glyphs
const (
	ActorGlyph       = '█'
	VolumeGlyphFull  = '▮'
	VolumeGlyphEmpty = '▯'
)

// Status text
const (
	GameOverBanner = " GAME OVER "
	RestartHint    = "press r to restart, q to quit"
	NotStartedHint = "P1: w/a/s/d   P2: arrows   v: hide   q: quit"
)

// TooSmallMessage replaces the arena when the terminal cannot fit it
const TooSmallMessage = "terminal too small"
