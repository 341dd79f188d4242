package event

import "github.com/lixenwraith/stellar-assault/component"

// GameStartPayload carries the pilot name typed on the entry screen
type GameStartPayload struct {
	Name string
}

// GameOverPayload carries the final session result
type GameOverPayload struct {
	Name  string
	Score int
}

// EnemyKilledPayload describes a rewarded enemy death
type EnemyKilledPayload struct {
	Type   component.EnemyType
	X, Y   float64
	ByBomb bool
}

// PlayerHitPayload carries lives remaining after the hit
type PlayerHitPayload struct {
	Lives int
}

// PowerupCollectedPayload identifies the collected powerup
type PowerupCollectedPayload struct {
	Type component.PowerupType
}

// BombDetonatedPayload carries the number of enemies destroyed
type BombDetonatedPayload struct {
	Count int
}

// UpgradeKind identifies a shop item
type UpgradeKind uint8

const (
	UpgradeFireRate UpgradeKind = iota
	UpgradeDamage
	UpgradeShield
)

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeFireRate:
		return "fire_rate"
	case UpgradeDamage:
		return "damage"
	case UpgradeShield:
		return "shield"
	default:
		return "unknown"
	}
}

// UpgradePurchasedPayload describes a completed purchase
type UpgradePurchasedPayload struct {
	Kind UpgradeKind
	Cost int
}

// ScoreSubmittedPayload reports a leaderboard submission result
type ScoreSubmittedPayload struct {
	Name  string
	Score int
	OK    bool
}
