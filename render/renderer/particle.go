package renderer

import (
	"github.com/lixenwraith/stellar-assault/render"
)

// ParticleRenderer draws explosion particles fading with remaining life
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.HasField() {
		return
	}
	for i := range ctx.Snapshot.Particles {
		p := &ctx.Snapshot.Particles[i]
		sx, sy, ok := ctx.MapToScreen(p.X, p.Y)
		if !ok {
			continue
		}
		opacity := p.Opacity()
		glyph := '.'
		if opacity > 0.5 {
			glyph = '*'
		}
		buf.SetFg(sx, sy, glyph, render.Blend(render.RgbBackground, render.ParseHex(p.Color), opacity))
	}
}
