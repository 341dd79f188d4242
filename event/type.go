package event

// EventType represents the type of game event
type EventType int

const (
	// === Command Event ===
	// Pushed by the input goroutine, applied at the start of the next tick

	// EventGameStart requests a new session from the name entry screen
	// Trigger: Name entry confirm
	// Consumer: Session FSM | Payload: *GameStartPayload
	EventGameStart EventType = iota + 1

	// EventPauseToggle flips between playing and paused
	// Trigger: Escape / P key, pause button
	// Consumer: Session FSM | Payload: nil
	EventPauseToggle

	// EventReturnToBase leaves the paused or game over screen for name entry
	// Trigger: "Return to base" / "Exit to menu"
	// Consumer: Session FSM | Payload: nil
	EventReturnToBase

	// EventUpgradeFireRateRequest buys a fire-rate upgrade
	// Trigger: Shop
	// Consumer: EconomySystem | Payload: nil
	EventUpgradeFireRateRequest

	// EventUpgradeDamageRequest buys a damage upgrade
	// Trigger: Shop
	// Consumer: EconomySystem | Payload: nil
	EventUpgradeDamageRequest

	// EventShieldPurchaseRequest buys a timed shield
	// Trigger: Shop
	// Consumer: EconomySystem | Payload: nil
	EventShieldPurchaseRequest

	// EventBombRequest detonates the held bomb
	// Trigger: Bomb button
	// Consumer: EconomySystem | Payload: nil
	EventBombRequest

	// === Lifecycle Event ===

	// EventGameReset signals that session state was reset for a new run
	// Trigger: Session FSM on nameEntry -> playing
	// Consumer: All systems (Init) | Payload: nil
	EventGameReset

	// EventLivesDepleted signals the last life was lost
	// Trigger: ContactSystem, delivered to the FSM synchronously
	// Consumer: Session FSM | Payload: nil
	EventLivesDepleted

	// EventGameOver signals the session ended
	// Trigger: Session FSM on playing -> gameOver
	// Consumer: SessionSystem (submission), AudioSystem | Payload: *GameOverPayload
	EventGameOver

	// === Notification Event ===
	// Pushed by systems during a tick, observed on the next dispatch

	// EventEnemyKilled signals an enemy was destroyed with reward
	// Trigger: CombatSystem, EconomySystem (bomb)
	// Consumer: AudioSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerHit signals a life was lost
	// Trigger: ContactSystem
	// Consumer: AudioSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventShieldBlocked signals the shield absorbed a contact
	// Trigger: ContactSystem
	// Consumer: AudioSystem | Payload: nil
	EventShieldBlocked

	// EventPowerupCollected signals a powerup pickup
	// Trigger: ContactSystem
	// Consumer: AudioSystem | Payload: *PowerupCollectedPayload
	EventPowerupCollected

	// EventBombDetonated signals a bomb cleared the field
	// Trigger: EconomySystem
	// Consumer: AudioSystem | Payload: *BombDetonatedPayload
	EventBombDetonated

	// EventUpgradePurchased signals a successful shop purchase
	// Trigger: EconomySystem
	// Consumer: AudioSystem | Payload: *UpgradePurchasedPayload
	EventUpgradePurchased

	// EventScoreSubmitted reports the outcome of a leaderboard submission
	// Trigger: SessionSystem submit goroutine
	// Consumer: SessionSystem | Payload: *ScoreSubmittedPayload
	EventScoreSubmitted
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventGameStart:
		return "GameStart"
	case EventPauseToggle:
		return "PauseToggle"
	case EventReturnToBase:
		return "ReturnToBase"
	case EventUpgradeFireRateRequest:
		return "UpgradeFireRateRequest"
	case EventUpgradeDamageRequest:
		return "UpgradeDamageRequest"
	case EventShieldPurchaseRequest:
		return "ShieldPurchaseRequest"
	case EventBombRequest:
		return "BombRequest"
	case EventGameReset:
		return "GameReset"
	case EventLivesDepleted:
		return "LivesDepleted"
	case EventGameOver:
		return "GameOver"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventPlayerHit:
		return "PlayerHit"
	case EventShieldBlocked:
		return "ShieldBlocked"
	case EventPowerupCollected:
		return "PowerupCollected"
	case EventBombDetonated:
		return "BombDetonated"
	case EventUpgradePurchased:
		return "UpgradePurchased"
	case EventScoreSubmitted:
		return "ScoreSubmitted"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number at push time
}

// ParseEventType resolves an event name as returned by String
func ParseEventType(name string) (EventType, bool) {
	for t := EventGameStart; t <= EventScoreSubmitted; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
