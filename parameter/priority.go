package parameter

// System Execution Priorities (lower runs first)
// Integration precedes collision; bullet-enemy resolution precedes player contacts
const (
	PriorityMovement  = 10 // Input-driven player movement
	PriorityWeapon    = 20 // Fire cadence and special weapon countdown
	PriorityMotion    = 30 // Position integration and bound culling
	PrioritySpawn     = 40 // After integration, before collision
	PriorityCombat    = 50 // Bullet vs enemy
	PriorityContact   = 60 // Player vs enemy, player vs powerup
	PriorityTelemetry = 90 // Session scalars mirrored to status registry

	// Event-driven systems with no per-tick work
	PriorityEconomy = 110
	PrioritySession = 120
	PriorityAudio   = 130
)
