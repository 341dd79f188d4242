package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/render"
)

// HudRenderer draws the status line and the shop row above the field
type HudRenderer struct{}

func NewHudRenderer() *HudRenderer {
	return &HudRenderer{}
}

func (r *HudRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if snap == nil || snap.Session.Phase == engine.PhaseNameEntry {
		return
	}
	s := &snap.Session
	base := tcell.StyleDefault.Background(render.RgbBackground)
	label := base.Foreground(render.RgbHudLabel)

	x := 1
	x = field(buf, x, 0, "SCORE ", fmt.Sprintf("%d", s.Score), label, base.Foreground(render.RgbHudScore).Bold(true))
	x = field(buf, x, 0, "CR ", fmt.Sprintf("%d", s.Credits), label, base.Foreground(render.RgbHudCredits))
	x = field(buf, x, 0, "LIVES ", strings.Repeat("*", max(s.Lives, 0)), label, base.Foreground(render.RgbHudLives).Bold(true))
	x = field(buf, x, 0, "RATE ", fmt.Sprintf("%dms", s.FireRate.Milliseconds()), label, base.Foreground(render.RgbHudText))
	x = field(buf, x, 0, "DMG ", fmt.Sprintf("%d", s.BulletDamage), label, base.Foreground(render.RgbHudText))
	if s.ShieldActive {
		secs := int(math.Ceil(snap.ShieldRemaining.Seconds()))
		x = field(buf, x, 0, "SHIELD ", fmt.Sprintf("%ds", secs), label, base.Foreground(render.RgbPlayerShield).Bold(true))
	}
	if s.Special != component.WeaponNone && snap.SpecialSeconds > 0 {
		x = field(buf, x, 0, s.Special.Label()+" ", fmt.Sprintf("%ds", snap.SpecialSeconds), label, base.Foreground(render.RgbPowerupTriple))
	}
	if ctx.Muted {
		buf.SetString(x, 0, "MUTE", label)
	}

	x = 1
	x = shopItem(buf, x, 1, "[1] RATE", parameter.CostFireRate, snap.CanUpgradeFireRate, base)
	x = shopItem(buf, x, 1, "[2] DMG", parameter.CostDamage, snap.CanUpgradeDamage, base)
	x = shopItem(buf, x, 1, "[3] SHIELD", parameter.CostShield, snap.CanBuyShield, base)
	bomb := base.Foreground(render.RgbShopBlocked)
	if s.BombAvailable {
		bomb = base.Foreground(render.RgbPowerupBomb).Bold(true)
	}
	buf.SetString(x, 1, "[B] BOMB", bomb)
}

func field(buf *render.RenderBuffer, x, y int, name, value string, labelStyle, valueStyle tcell.Style) int {
	x = buf.SetString(x, y, name, labelStyle)
	x = buf.SetString(x, y, value, valueStyle)
	return x + 2
}

func shopItem(buf *render.RenderBuffer, x, y int, name string, cost int, ready bool, base tcell.Style) int {
	style := base.Foreground(render.RgbShopBlocked)
	if ready {
		style = base.Foreground(render.RgbShopReady).Bold(true)
	}
	x = buf.SetString(x, y, fmt.Sprintf("%s %d", name, cost), style)
	return x + 2
}
