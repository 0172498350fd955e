package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityLanes
	PriorityOverlay
	PriorityCars
	PriorityHealers
	PriorityBlocks
	PriorityParticle
	PriorityUI
	PriorityStatus
)
