package component

// WeaponMode is the active firing pattern
type WeaponMode uint8

const (
	WeaponNone     WeaponMode = iota // Single centred shot
	WeaponTriple                     // Centre plus two angled shots
	WeaponDual                       // Two parallel side shots
	WeaponSurround                   // One shot per cardinal direction
)

func (m WeaponMode) String() string {
	switch m {
	case WeaponNone:
		return "none"
	case WeaponTriple:
		return "triple"
	case WeaponDual:
		return "dual"
	case WeaponSurround:
		return "surround"
	default:
		return "unknown"
	}
}

// Label is the HUD caption of a special weapon
func (m WeaponMode) Label() string {
	switch m {
	case WeaponTriple:
		return "TRIPLE SHOT"
	case WeaponDual:
		return "DUAL SHOT"
	case WeaponSurround:
		return "SURROUND FIRE"
	default:
		return ""
	}
}
