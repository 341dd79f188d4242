package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/component"
)

var (
	RgbBackground = tcell.NewRGBColor(10, 10, 26)    // Deep space
	RgbBorder     = tcell.NewRGBColor(60, 60, 100)   // Field frame
	RgbStarDim    = tcell.NewRGBColor(70, 70, 90)    // Distant star
	RgbStarBright = tcell.NewRGBColor(170, 170, 200) // Near star

	RgbPlayer       = tcell.NewRGBColor(0, 212, 255)  // Cyan ship
	RgbPlayerShield = tcell.NewRGBColor(78, 205, 196) // Shield ring, matches block burst
	RgbBullet       = tcell.NewRGBColor(255, 255, 120)

	RgbEnemyNormal = tcell.NewRGBColor(255, 80, 80)
	RgbEnemyFast   = tcell.NewRGBColor(255, 165, 0)
	RgbEnemyElite  = tcell.NewRGBColor(200, 80, 255)

	RgbPowerupShield   = tcell.NewRGBColor(78, 205, 196)
	RgbPowerupBomb     = tcell.NewRGBColor(255, 255, 0)
	RgbPowerupTriple   = tcell.NewRGBColor(0, 255, 136)
	RgbPowerupDual     = tcell.NewRGBColor(100, 150, 255)
	RgbPowerupSurround = tcell.NewRGBColor(255, 0, 110)

	RgbHudText     = tcell.NewRGBColor(220, 220, 230)
	RgbHudLabel    = tcell.NewRGBColor(130, 130, 160)
	RgbHudScore    = tcell.NewRGBColor(255, 215, 0)
	RgbHudCredits  = tcell.NewRGBColor(0, 255, 136)
	RgbHudLives    = tcell.NewRGBColor(255, 0, 110)
	RgbShopReady   = tcell.NewRGBColor(0, 255, 136)
	RgbShopBlocked = tcell.NewRGBColor(90, 90, 110)

	RgbOverlayBg    = tcell.NewRGBColor(20, 20, 40)
	RgbTitle        = tcell.NewRGBColor(0, 212, 255)
	RgbHighlight    = tcell.NewRGBColor(255, 215, 0)
	RgbWarning      = tcell.NewRGBColor(255, 80, 80)
	RgbOfflineLabel = tcell.NewRGBColor(150, 150, 150)
)

// EnemyColor returns the body color for an enemy type
func EnemyColor(t component.EnemyType) tcell.Color {
	switch t {
	case component.EnemyFast:
		return RgbEnemyFast
	case component.EnemyElite:
		return RgbEnemyElite
	default:
		return RgbEnemyNormal
	}
}

// PowerupColor returns the glyph color for a powerup type
func PowerupColor(t component.PowerupType) tcell.Color {
	switch t {
	case component.PowerupShield:
		return RgbPowerupShield
	case component.PowerupBomb:
		return RgbPowerupBomb
	case component.PowerupTriple:
		return RgbPowerupTriple
	case component.PowerupDual:
		return RgbPowerupDual
	case component.PowerupSurround:
		return RgbPowerupSurround
	default:
		return RgbHudText
	}
}

// ParseHex converts "#rrggbb" to a color, falling back to white
func ParseHex(hex string) tcell.Color {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return tcell.ColorWhite
	}
	return c
}

// Blend mixes src over dst; alpha 0 keeps dst, 1 yields src
func Blend(dst, src tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	dr, dg, db := dst.RGB()
	sr, sg, sb := src.RGB()
	mix := func(d, s int32) int32 {
		return d + int32(float64(s-d)*alpha)
	}
	return tcell.NewRGBColor(mix(dr, sr), mix(dg, sg), mix(db, sb))
}

// HealthColor runs red at low health to green at full
func HealthColor(ratio float64) tcell.Color {
	switch {
	case ratio > 0.66:
		return tcell.NewRGBColor(0, 220, 100)
	case ratio > 0.33:
		return tcell.NewRGBColor(255, 200, 0)
	default:
		return tcell.NewRGBColor(255, 60, 60)
	}
}
