package parameter

import "time"

// Fire Cadence
const (
	// DefaultFireRate is the starting interval between shots
	DefaultFireRate = 300 * time.Millisecond

	// MinFireRate is the fire-rate floor
	MinFireRate = 100 * time.Millisecond

	// FireRateStep is the interval reduction per upgrade
	FireRateStep = 30 * time.Millisecond

	// DefaultBulletDamage is the starting damage per bullet
	DefaultBulletDamage = 1
)

// Bullet Geometry
const (
	// BulletSpeed is the per-tick bullet speed along its main axis
	BulletSpeed = 8.0

	// BulletMuzzleOffset is the vertical spawn offset of centre shots
	BulletMuzzleOffset = 20.0

	// TripleSideOffset is the horizontal offset of the angled triple bullets
	TripleSideOffset = 25.0

	// TripleSideDrift is the horizontal velocity of the angled triple bullets
	TripleSideDrift = 2.0

	// DualSideOffset is the horizontal offset of the dual bullets
	DualSideOffset = 30.0

	// DualMuzzleOffset is the vertical spawn offset of the dual bullets
	DualMuzzleOffset = 10.0

	// SurroundOffset is the distance of surround bullets from the ship centre
	SurroundOffset = 30.0
)

// Special Weapon
const (
	// SpecialWeaponDuration is the lifetime of a triple/dual/surround pickup, in seconds
	SpecialWeaponDuration = 10.0
)
