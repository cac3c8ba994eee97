package render

// RenderPriority determines layer order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityBorder
	PriorityEntities
	PriorityOverlay
	PriorityUI
	PriorityDebug
)
