package system

import (
	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// lootBand is an upper bound on the drop roll for one powerup type
type lootBand struct {
	limit float64
	kind  component.PowerupType
}

// lootTable is ordered by cumulative probability; the last band catches the rest
var lootTable = []lootBand{
	{parameter.PowerupBandBomb, component.PowerupBomb},
	{parameter.PowerupBandShield, component.PowerupShield},
	{parameter.PowerupBandTriple, component.PowerupTriple},
	{parameter.PowerupBandDual, component.PowerupDual},
	{1, component.PowerupSurround},
}

// RollPowerup maps a roll in [0,1) to a powerup type
func RollPowerup(roll float64) component.PowerupType {
	for _, b := range lootTable {
		if roll < b.limit {
			return b.kind
		}
	}
	return component.PowerupSurround
}

// ApplyPowerup grants a collected powerup's effect
func ApplyPowerup(w *engine.World, t component.PowerupType) {
	switch t {
	case component.PowerupShield:
		w.ActivateShield(parameter.ShieldPickupDuration)
	case component.PowerupBomb:
		w.Session.BombAvailable = true
	case component.PowerupTriple, component.PowerupDual, component.PowerupSurround:
		if mode, ok := t.WeaponMode(); ok {
			w.GrantSpecial(mode)
		}
	}
}

// DropLoot rolls the drop chance for a shot-down enemy and spawns the powerup where it died
// Bomb kills never call this
func DropLoot(w *engine.World, x, y float64) bool {
	if !vmath.Chance(w.Rand, parameter.PowerupDropChance) {
		return false
	}
	w.SpawnPowerup(x, y, RollPowerup(w.Rand.Float64()))
	return true
}
