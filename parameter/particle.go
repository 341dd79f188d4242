package parameter

// Explosion Particles
const (
	// ExplosionParticleCount is the burst size of every explosion
	ExplosionParticleCount = 8

	// ParticleSpeedSpread is the full range of each velocity component, centred on zero
	ParticleSpeedSpread = 6.0

	// ParticleLifetime is the number of ticks a particle lives
	ParticleLifetime = 25

	// ParticleOpacityScale divides the remaining lifetime to obtain opacity
	ParticleOpacityScale = 30.0
)

// Explosion Colors
const (
	ColorEnemyDeath  = "#ff6b35"
	ColorShieldBlock = "#4ecdc4"
	ColorPlayerHit   = "#ff006e"
	ColorPickup      = "#00ff88"
	ColorBomb        = "#ffff00"
)
