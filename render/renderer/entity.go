package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/render"
)

const (
	GlyphPlayer      = 'A'
	GlyphBullet      = '|'
	GlyphBulletSide  = '-'
	GlyphShieldLeft  = '('
	GlyphShieldRight = ')'
)

var enemyGlyphs = [component.EnemyTypeCount]rune{
	component.EnemyNormal: 'V',
	component.EnemyFast:   'Y',
	component.EnemyElite:  'W',
}

var powerupGlyphs = [component.PowerupTypeCount]rune{
	component.PowerupShield:   'S',
	component.PowerupBomb:     'B',
	component.PowerupTriple:   'T',
	component.PowerupDual:     'D',
	component.PowerupSurround: 'X',
}

// EntityRenderer draws powerups, enemies, bullets and the player ship
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.HasField() {
		return
	}
	snap := ctx.Snapshot
	base := tcell.StyleDefault.Background(render.RgbBackground)

	for _, p := range snap.Powerups {
		if sx, sy, ok := ctx.MapToScreen(p.X, p.Y); ok {
			buf.Set(sx, sy, powerupGlyph(p.Type), base.Foreground(render.PowerupColor(p.Type)).Bold(true))
		}
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		sx, sy, ok := ctx.MapToScreen(e.X, e.Y)
		if !ok {
			continue
		}
		style := base.Foreground(render.EnemyColor(e.Type))
		// Damaged enemies show remaining health as background tint
		if ratio := e.HPRatio(); ratio < 1 {
			style = style.Background(render.Blend(render.RgbBackground, render.HealthColor(ratio), 0.35))
		}
		buf.Set(sx, sy, enemyGlyph(e.Type), style)
	}

	for _, b := range snap.Bullets {
		if sx, sy, ok := ctx.MapToScreen(b.X, b.Y); ok {
			glyph := GlyphBullet
			if b.VY == 0 {
				glyph = GlyphBulletSide
			}
			buf.Set(sx, sy, glyph, base.Foreground(render.RgbBullet))
		}
	}

	if snap.Session.Phase == engine.PhaseNameEntry {
		return
	}
	sx, sy, ok := ctx.MapToScreen(snap.Player.X, snap.Player.Y)
	if !ok {
		return
	}
	buf.Set(sx, sy, GlyphPlayer, base.Foreground(render.RgbPlayer).Bold(true))
	if snap.Session.ShieldActive {
		shield := base.Foreground(render.RgbPlayerShield).Bold(true)
		buf.Set(sx-1, sy, GlyphShieldLeft, shield)
		buf.Set(sx+1, sy, GlyphShieldRight, shield)
	}
}

func enemyGlyph(t component.EnemyType) rune {
	if t < component.EnemyTypeCount {
		return enemyGlyphs[t]
	}
	return '?'
}

func powerupGlyph(t component.PowerupType) rune {
	if t < component.PowerupTypeCount {
		return powerupGlyphs[t]
	}
	return '?'
}
