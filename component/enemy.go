package component

import (
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// EnemyType selects the reward table and spawn profile of an enemy
type EnemyType uint8

const (
	EnemyNormal EnemyType = iota
	EnemyFast
	EnemyElite
	EnemyTypeCount // Sentinel for array sizing
)

func (t EnemyType) String() string {
	switch t {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyElite:
		return "elite"
	default:
		return "unknown"
	}
}

// Reward returns the score and credits awarded when an enemy of this type dies
func (t EnemyType) Reward() (score, credits int) {
	switch t {
	case EnemyNormal:
		return parameter.ScoreNormal, parameter.CreditsNormal
	case EnemyFast:
		return parameter.ScoreFast, parameter.CreditsFast
	case EnemyElite:
		return parameter.ScoreElite, parameter.CreditsElite
	default:
		return 0, 0
	}
}

// EnemyComponent is a descending hostile ship
type EnemyComponent struct {
	ID     core.Entity
	X, Y   float64
	Speed  float64 // Downward units per tick
	Wobble float64 // Lateral sinusoidal drift amplitude
	HP     int
	MaxHP  int
	Type   EnemyType
}

// Alive reports whether the enemy still has hit points
func (e *EnemyComponent) Alive() bool {
	return e.HP > 0
}

// HPRatio returns remaining health in [0, 1] for the health bar
func (e *EnemyComponent) HPRatio() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

// TakeDamage subtracts damage and returns true if this hit killed the enemy
func (e *EnemyComponent) TakeDamage(damage int) bool {
	if e.HP <= 0 {
		return false
	}
	e.HP -= damage
	return e.HP <= 0
}
