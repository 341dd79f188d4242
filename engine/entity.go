package engine

import (
	"time"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// SpawnBullet appends a bullet carrying the given damage
func (w *World) SpawnBullet(x, y, vx, vy float64, damage int) {
	w.Bullets = append(w.Bullets, component.BulletComponent{
		ID:     w.NextID(),
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: damage,
	})
}

// SpawnEnemy assigns an id and appends the enemy
func (w *World) SpawnEnemy(e component.EnemyComponent) component.EnemyComponent {
	e.ID = w.NextID()
	if e.MaxHP < e.HP {
		e.MaxHP = e.HP
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

func (w *World) SpawnPowerup(x, y float64, t component.PowerupType) {
	w.Powerups = append(w.Powerups, component.PowerupComponent{
		ID:   w.NextID(),
		X:    x,
		Y:    y,
		Type: t,
	})
}

// SpawnExplosion emits a particle burst at a point
func (w *World) SpawnExplosion(x, y float64, color string) {
	half := parameter.ParticleSpeedSpread / 2
	for i := 0; i < parameter.ExplosionParticleCount; i++ {
		w.Particles = append(w.Particles, component.ParticleComponent{
			ID:    w.NextID(),
			X:     x,
			Y:     y,
			VX:    vmath.Range(w.Rand, -half, half),
			VY:    vmath.Range(w.Rand, -half, half),
			Life:  parameter.ParticleLifetime,
			Color: color,
		})
	}
}

// AwardKill credits the reward of an enemy type to the session
func (w *World) AwardKill(t component.EnemyType) {
	score, credits := t.Reward()
	w.Session.Score += score
	w.Session.Credits += credits
}

// ActivateShield raises the shield and (re)arms its single expiry timer
func (w *World) ActivateShield(d time.Duration) {
	w.Session.ShieldActive = true
	w.Timers.After(TimerShield, d, func() {
		w.Session.ShieldActive = false
	})
}

// ConsumeShield drops the shield early and disarms the pending expiry
func (w *World) ConsumeShield() {
	w.Session.ShieldActive = false
	w.Timers.Cancel(TimerShield)
}

// GrantSpecial equips a special weapon and restarts its countdown
func (w *World) GrantSpecial(mode component.WeaponMode) {
	w.Session.Special = mode
	w.Session.SpecialTime = parameter.SpecialWeaponDuration
}
