package component

import (
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// ParticleComponent is a short-lived explosion fragment
type ParticleComponent struct {
	ID     core.Entity
	X, Y   float64
	VX, VY float64
	Life   int    // Remaining ticks
	Color  string // Hex RGB, e.g. "#ff6b35"
}

// Opacity returns the fade level derived from remaining life
func (p *ParticleComponent) Opacity() float64 {
	o := float64(p.Life) / parameter.ParticleOpacityScale
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}
