package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityParticle                  // Under ships so bursts never hide a glyph
	PriorityEntities
	PriorityUI
	PriorityOverlay
)
