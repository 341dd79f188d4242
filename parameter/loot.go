package parameter

import "time"

// Drop Rates
const (
	// PowerupDropChance is the chance a killed enemy drops a powerup
	PowerupDropChance = 0.15

	// Cumulative bands over a single roll in [0,1)
	PowerupBandBomb   = 0.05
	PowerupBandShield = 0.15
	PowerupBandTriple = 0.45
	PowerupBandDual   = 0.75
)

// Powerup Motion
const (
	// PowerupFallSpeed is the per-tick downward drift of a powerup
	PowerupFallSpeed = 2.0
)

// Shield Durations
const (
	// ShieldPickupDuration is the shield lifetime granted by a shield powerup
	ShieldPickupDuration = 5 * time.Second

	// ShieldPurchaseDuration is the shield lifetime granted by the shop
	ShieldPurchaseDuration = 8 * time.Second
)
