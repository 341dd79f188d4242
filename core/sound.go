package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundExplosion   SoundType = iota // Enemy destroyed
	SoundPlayerHit                    // Life lost
	SoundShieldBlock                  // Shield absorbed a contact
	SoundPickup                       // Powerup collected
	SoundBomb                         // Bomb detonated
	SoundUpgrade                      // Shop purchase
	SoundGameOver                     // Session ended
	SoundTypeCount
)

// String returns the sound name used in config and logs
func (s SoundType) String() string {
	switch s {
	case SoundExplosion:
		return "explosion"
	case SoundPlayerHit:
		return "hit"
	case SoundShieldBlock:
		return "block"
	case SoundPickup:
		return "pickup"
	case SoundBomb:
		return "bomb"
	case SoundUpgrade:
		return "upgrade"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
