package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// EconomySystem applies shop purchases and bomb detonation
// Every action checks then spends in one step; a failed check changes nothing
type EconomySystem struct {
	world *engine.World

	statPurchases *atomic.Int64
	statRejected  *atomic.Int64
}

func NewEconomySystem(world *engine.World) engine.System {
	s := &EconomySystem{
		world:         world,
		statPurchases: world.Status.Ints.Get("economy.purchases"),
		statRejected:  world.Status.Ints.Get("economy.rejected"),
	}
	s.Init()
	return s
}

func (s *EconomySystem) Init() {
	s.statPurchases.Store(0)
	s.statRejected.Store(0)
}

func (s *EconomySystem) Name() string {
	return "economy"
}

func (s *EconomySystem) Priority() int {
	return parameter.PriorityEconomy
}

func (s *EconomySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventUpgradeFireRateRequest,
		event.EventUpgradeDamageRequest,
		event.EventShieldPurchaseRequest,
		event.EventBombRequest,
	}
}

func (s *EconomySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.world.Playing() {
		s.statRejected.Add(1)
		return
	}

	var ok bool
	switch ev.Type {
	case event.EventUpgradeFireRateRequest:
		ok = s.UpgradeFireRate()
	case event.EventUpgradeDamageRequest:
		ok = s.UpgradeDamage()
	case event.EventShieldPurchaseRequest:
		ok = s.BuyShield()
	case event.EventBombRequest:
		ok = s.DetonateBomb()
	}
	if !ok {
		s.statRejected.Add(1)
	}
}

func (s *EconomySystem) Update() {}

// UpgradeFireRate spends credits to shorten the fire interval, floored at MinFireRate
func (s *EconomySystem) UpgradeFireRate() bool {
	ss := &s.world.Session
	if !ss.CanUpgradeFireRate() {
		return false
	}
	ss.Credits -= parameter.CostFireRate
	ss.FireRate = max(parameter.MinFireRate, ss.FireRate-parameter.FireRateStep)
	s.purchased(event.UpgradeFireRate, parameter.CostFireRate)
	return true
}

// UpgradeDamage spends credits for one more point of bullet damage
func (s *EconomySystem) UpgradeDamage() bool {
	ss := &s.world.Session
	if !ss.CanUpgradeDamage() {
		return false
	}
	ss.Credits -= parameter.CostDamage
	ss.BulletDamage++
	s.purchased(event.UpgradeDamage, parameter.CostDamage)
	return true
}

// BuyShield spends credits for a purchased shield; refused while one is up
func (s *EconomySystem) BuyShield() bool {
	ss := &s.world.Session
	if !ss.CanBuyShield() {
		return false
	}
	ss.Credits -= parameter.CostShield
	s.world.ActivateShield(parameter.ShieldPurchaseDuration)
	s.purchased(event.UpgradeShield, parameter.CostShield)
	return true
}

// DetonateBomb destroys every enemy with full reward and no drops
func (s *EconomySystem) DetonateBomb() bool {
	w := s.world
	if !w.Session.BombAvailable {
		return false
	}

	count := len(w.Enemies)
	for _, e := range w.Enemies {
		w.SpawnExplosion(e.X, e.Y, parameter.ColorBomb)
		w.AwardKill(e.Type)
		w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
			Type:   e.Type,
			X:      e.X,
			Y:      e.Y,
			ByBomb: true,
		})
	}
	w.Enemies = w.Enemies[:0]
	w.Session.BombAvailable = false
	w.PushEvent(event.EventBombDetonated, &event.BombDetonatedPayload{Count: count})
	return true
}

func (s *EconomySystem) purchased(kind event.UpgradeKind, cost int) {
	s.statPurchases.Add(1)
	s.world.PushEvent(event.EventUpgradePurchased, &event.UpgradePurchasedPayload{Kind: kind, Cost: cost})
}
