package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// ContactSystem resolves the ship against enemies, then against powerups
// A contact is consumed by the shield if one is up, otherwise costs a life
// Losing the last life ends the session immediately and stops further contacts this tick
type ContactSystem struct {
	world *engine.World

	statLives   *atomic.Int64
	statBlocks  *atomic.Int64
	statPickups *atomic.Int64
}

func NewContactSystem(world *engine.World) engine.System {
	s := &ContactSystem{
		world:       world,
		statLives:   world.Status.Ints.Get("player.lives"),
		statBlocks:  world.Status.Ints.Get("player.blocks"),
		statPickups: world.Status.Ints.Get("loot.pickups"),
	}
	s.Init()
	return s
}

func (s *ContactSystem) Init() {
	s.statLives.Store(parameter.InitialLives)
	s.statBlocks.Store(0)
	s.statPickups.Store(0)
}

func (s *ContactSystem) Name() string {
	return "contact"
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

func (s *ContactSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ContactSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ContactSystem) Update() {
	s.resolveEnemies()
	if s.world.Playing() {
		s.resolvePowerups()
	}
}

func (s *ContactSystem) resolveEnemies() {
	w := s.world
	px, py := w.Player.X, w.Player.Y

	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !w.Playing() || !vmath.WithinRadius(px-e.X, py-e.Y, parameter.PlayerSize) {
			kept = append(kept, e)
			continue
		}

		if w.Session.ShieldActive {
			w.ConsumeShield()
			w.SpawnExplosion(e.X, e.Y, parameter.ColorShieldBlock)
			w.PushEvent(event.EventShieldBlocked, nil)
			s.statBlocks.Add(1)
			continue
		}

		w.SpawnExplosion(px, py, parameter.ColorPlayerHit)
		w.Session.Lives = max(0, w.Session.Lives-parameter.ContactDamage)
		s.statLives.Store(int64(w.Session.Lives))
		w.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{Lives: w.Session.Lives})

		if w.Session.Lives == 0 {
			w.Fire(event.EventLivesDepleted, nil)
		}
	}
	w.Enemies = kept
}

func (s *ContactSystem) resolvePowerups() {
	w := s.world
	px, py := w.Player.X, w.Player.Y

	kept := w.Powerups[:0]
	for _, p := range w.Powerups {
		if !vmath.WithinRadius(px-p.X, py-p.Y, parameter.PlayerSize) {
			kept = append(kept, p)
			continue
		}
		ApplyPowerup(w, p.Type)
		w.SpawnExplosion(p.X, p.Y, parameter.ColorPickup)
		w.PushEvent(event.EventPowerupCollected, &event.PowerupCollectedPayload{Type: p.Type})
		s.statPickups.Add(1)
	}
	w.Powerups = kept
}
