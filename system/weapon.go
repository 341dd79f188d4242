package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// Shot is one bullet of a firing pattern, relative to the ship
type Shot struct {
	DX, DY float64
	VX, VY float64
}

var (
	patternNone = []Shot{
		{0, -parameter.BulletMuzzleOffset, 0, -parameter.BulletSpeed},
	}
	patternTriple = []Shot{
		{0, -parameter.BulletMuzzleOffset, 0, -parameter.BulletSpeed},
		{-parameter.TripleSideOffset, -parameter.BulletMuzzleOffset, -parameter.TripleSideDrift, -parameter.BulletSpeed},
		{parameter.TripleSideOffset, -parameter.BulletMuzzleOffset, parameter.TripleSideDrift, -parameter.BulletSpeed},
	}
	patternDual = []Shot{
		{-parameter.DualSideOffset, -parameter.DualMuzzleOffset, 0, -parameter.BulletSpeed},
		{parameter.DualSideOffset, -parameter.DualMuzzleOffset, 0, -parameter.BulletSpeed},
	}
	patternSurround = []Shot{
		{0, -parameter.SurroundOffset, 0, -parameter.BulletSpeed},
		{0, parameter.SurroundOffset, 0, parameter.BulletSpeed},
		{-parameter.SurroundOffset, 0, -parameter.BulletSpeed, 0},
		{parameter.SurroundOffset, 0, parameter.BulletSpeed, 0},
	}
)

// Pattern returns the shots fired by a weapon mode
func Pattern(mode component.WeaponMode) []Shot {
	switch mode {
	case component.WeaponTriple:
		return patternTriple
	case component.WeaponDual:
		return patternDual
	case component.WeaponSurround:
		return patternSurround
	case component.WeaponNone:
		return patternNone
	default:
		return patternNone
	}
}

// WeaponSystem owns the fire cadence and the special weapon countdown
// The cadence is a repeating world timer; each firing reads the ship position,
// damage and mode at that moment
type WeaponSystem struct {
	world *engine.World

	statShots *atomic.Int64
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		world:     world,
		statShots: world.Status.Ints.Get("weapon.shots"),
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.statShots.Store(0)
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventUpgradePurchased,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventUpgradePurchased:
		// A faster rate restarts the interval
		if p, ok := ev.Payload.(*event.UpgradePurchasedPayload); ok && p.Kind == event.UpgradeFireRate {
			s.arm()
		}
	}
}

func (s *WeaponSystem) Update() {
	w := s.world
	if !w.Timers.Active(engine.TimerFire) {
		s.arm()
	}

	if w.Session.Special != component.WeaponNone {
		w.Session.SpecialTime -= parameter.TickSeconds
		if w.Session.SpecialTime <= 0 {
			w.Session.Special = component.WeaponNone
			w.Session.SpecialTime = 0
		}
	}
}

func (s *WeaponSystem) arm() {
	s.world.Timers.Every(engine.TimerFire, s.world.Session.FireRate, s.fire)
}

// fire runs from the timer callback inside the tick
func (s *WeaponSystem) fire() {
	w := s.world
	if !w.Playing() {
		return
	}
	x, y := w.Player.X, w.Player.Y
	damage := w.Session.BulletDamage
	for _, shot := range Pattern(w.Session.Special) {
		w.SpawnBullet(x+shot.DX, y+shot.DY, shot.VX, shot.VY, damage)
		s.statShots.Add(1)
	}
}
