package component

import "github.com/lixenwraith/stellar-assault/core"

// PowerupType identifies the effect of a collectible drop
type PowerupType uint8

const (
	PowerupShield PowerupType = iota
	PowerupBomb
	PowerupTriple
	PowerupDual
	PowerupSurround
	PowerupTypeCount // Sentinel for array sizing
)

func (t PowerupType) String() string {
	switch t {
	case PowerupShield:
		return "shield"
	case PowerupBomb:
		return "bomb"
	case PowerupTriple:
		return "triple"
	case PowerupDual:
		return "dual"
	case PowerupSurround:
		return "surround"
	default:
		return "unknown"
	}
}

// WeaponMode returns the special weapon granted by this powerup
// ok is false for non-weapon powerups
func (t PowerupType) WeaponMode() (mode WeaponMode, ok bool) {
	switch t {
	case PowerupTriple:
		return WeaponTriple, true
	case PowerupDual:
		return WeaponDual, true
	case PowerupSurround:
		return WeaponSurround, true
	case PowerupShield, PowerupBomb:
		return WeaponNone, false
	default:
		return WeaponNone, false
	}
}

// PowerupComponent is a falling collectible dropped by a dead enemy
type PowerupComponent struct {
	ID   core.Entity
	X, Y float64
	Type PowerupType
}
