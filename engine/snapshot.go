package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/stellar-assault/component"
)

// Snapshot is a read-only copy of the world for presentation
// Nothing in it aliases world memory
type Snapshot struct {
	Frame  int64
	Width  float64
	Height float64

	Player    component.PlayerComponent
	Bullets   []component.BulletComponent
	Enemies   []component.EnemyComponent
	Powerups  []component.PowerupComponent
	Particles []component.ParticleComponent

	Session         Session
	ShieldRemaining time.Duration
	SpecialSeconds  int // Whole seconds left on the special weapon, rounded up

	CanUpgradeFireRate bool
	CanUpgradeDamage   bool
	CanBuyShield       bool
}

// Snapshot copies the current state under the update lock
func (w *World) Snapshot() Snapshot {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return w.SnapshotLocked()
}

// SnapshotLocked copies the current state; caller holds the update lock
func (w *World) SnapshotLocked() Snapshot {
	s := Snapshot{
		Frame:     w.frame.Load(),
		Width:     w.Width,
		Height:    w.Height,
		Player:    w.Player,
		Bullets:   append([]component.BulletComponent(nil), w.Bullets...),
		Enemies:   append([]component.EnemyComponent(nil), w.Enemies...),
		Powerups:  append([]component.PowerupComponent(nil), w.Powerups...),
		Particles: append([]component.ParticleComponent(nil), w.Particles...),
		Session:   w.Session,

		ShieldRemaining:    w.Timers.Remaining(TimerShield),
		CanUpgradeFireRate: w.Session.CanUpgradeFireRate(),
		CanUpgradeDamage:   w.Session.CanUpgradeDamage(),
		CanBuyShield:       w.Session.CanBuyShield(),
	}
	if w.Session.Special != component.WeaponNone && w.Session.SpecialTime > 0 {
		s.SpecialSeconds = int(math.Ceil(w.Session.SpecialTime))
	}
	return s
}
