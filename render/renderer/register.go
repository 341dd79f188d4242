package renderer

import "github.com/lixenwraith/stellar-assault/render"

// RegisterAll installs the standard layers on an orchestrator
func RegisterAll(o *render.RenderOrchestrator, starSeed uint64) {
	o.Register(NewFieldRenderer(starSeed), render.PriorityBackground)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewEntityRenderer(), render.PriorityEntities)
	o.Register(NewHudRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
