package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/render"
	"github.com/lixenwraith/stellar-assault/vmath"
)

const (
	starCount = 60
	// starScroll is world units per frame for the near layer; far stars move at half
	starScroll = 0.6
)

type star struct {
	x, y float64
	near bool
}

// FieldRenderer draws the play field frame and a scrolling star background
type FieldRenderer struct {
	stars []star
}

func NewFieldRenderer(seed uint64) *FieldRenderer {
	rng := vmath.NewFastRand(seed)
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{x: rng.Float64(), y: rng.Float64(), near: rng.Intn(3) == 0}
	}
	return &FieldRenderer{stars: stars}
}

func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.HasField() {
		return
	}
	snap := ctx.Snapshot
	frame := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbBorder)

	left, right := ctx.FieldX-1, ctx.FieldX+ctx.FieldWidth
	top, bottom := ctx.FieldY-1, ctx.FieldY+ctx.FieldHeight
	for x := left + 1; x < right; x++ {
		buf.Set(x, top, tcell.RuneHLine, frame)
		buf.Set(x, bottom, tcell.RuneHLine, frame)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, tcell.RuneVLine, frame)
		buf.Set(right, y, tcell.RuneVLine, frame)
	}
	buf.Set(left, top, tcell.RuneULCorner, frame)
	buf.Set(right, top, tcell.RuneURCorner, frame)
	buf.Set(left, bottom, tcell.RuneLLCorner, frame)
	buf.Set(right, bottom, tcell.RuneLRCorner, frame)

	for _, s := range r.stars {
		speed := starScroll / 2
		color := render.RgbStarDim
		glyph := '.'
		if s.near {
			speed = starScroll
			color = render.RgbStarBright
			glyph = '+'
		}
		y := s.y*snap.Height + float64(snap.Frame)*speed
		for y >= snap.Height {
			y -= snap.Height
		}
		if sx, sy, ok := ctx.MapToScreen(s.x*snap.Width, y); ok {
			buf.SetFg(sx, sy, glyph, color)
		}
	}
}
