package input

// IntentType is a semantic action decoded from a key
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // Ctrl+C
	IntentToggleMute // m

	// Held movement, arrows and WASD
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUp
	IntentMoveDown

	// Session
	IntentPause        // Escape, p, P
	IntentConfirm      // Enter on name entry
	IntentReturnToBase // r on pause and game over screens

	// Shop and consumables
	IntentUpgradeFireRate // 1
	IntentUpgradeDamage   // 2
	IntentBuyShield       // 3
	IntentBomb            // b, space

	intentCount
)

var intentNames = [intentCount]string{
	IntentNone:            "none",
	IntentQuit:            "quit",
	IntentToggleMute:      "toggle_mute",
	IntentMoveLeft:        "move_left",
	IntentMoveRight:       "move_right",
	IntentMoveUp:          "move_up",
	IntentMoveDown:        "move_down",
	IntentPause:           "pause",
	IntentConfirm:         "confirm",
	IntentReturnToBase:    "return_to_base",
	IntentUpgradeFireRate: "upgrade_fire_rate",
	IntentUpgradeDamage:   "upgrade_damage",
	IntentBuyShield:       "buy_shield",
	IntentBomb:            "bomb",
}

func (i IntentType) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// ParseIntent resolves a config action name
func ParseIntent(name string) (IntentType, bool) {
	for i, n := range intentNames {
		if n == name {
			return IntentType(i), true
		}
	}
	return IntentNone, false
}

// IsMovement reports whether the intent is a held direction
func (i IntentType) IsMovement() bool {
	return i >= IntentMoveLeft && i <= IntentMoveDown
}
