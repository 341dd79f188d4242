package component

import "github.com/lixenwraith/stellar-assault/core"

// BulletComponent is a linear projectile fired by the player
type BulletComponent struct {
	ID     core.Entity
	X, Y   float64
	VX, VY float64
	Damage int // Damage active at fire time, always >= 1
}
