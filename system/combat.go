package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// CombatSystem resolves bullet against enemy hits
// Each live enemy takes at most one bullet per tick and each bullet hits at most once
// Enemies at zero hp are removed in the same tick with their reward and loot roll
type CombatSystem struct {
	world *engine.World

	consumed []bool // Per-bullet scratch, reused across ticks

	statHits  *atomic.Int64
	statKills *atomic.Int64
	statDrops *atomic.Int64
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{
		world:     world,
		statHits:  world.Status.Ints.Get("combat.hits"),
		statKills: world.Status.Ints.Get("combat.kills"),
		statDrops: world.Status.Ints.Get("loot.drops"),
	}
	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.statHits.Store(0)
	s.statKills.Store(0)
	s.statDrops.Store(0)
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CombatSystem) Update() {
	w := s.world
	if len(w.Enemies) == 0 || len(w.Bullets) == 0 {
		return
	}

	if cap(s.consumed) < len(w.Bullets) {
		s.consumed = make([]bool, len(w.Bullets))
	}
	s.consumed = s.consumed[:len(w.Bullets)]
	clear(s.consumed)

	hits := 0
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive() {
			continue
		}
		for j := range w.Bullets {
			if s.consumed[j] {
				continue
			}
			b := &w.Bullets[j]
			if vmath.Hit(b.X-e.X, b.Y-e.Y, parameter.EnemySize) {
				e.TakeDamage(b.Damage)
				s.consumed[j] = true
				hits++
				break
			}
		}
	}
	if hits == 0 {
		return
	}
	s.statHits.Add(int64(hits))

	kept := w.Bullets[:0]
	for j, b := range w.Bullets {
		if !s.consumed[j] {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept

	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			alive = append(alive, e)
			continue
		}
		w.AwardKill(e.Type)
		if DropLoot(w, e.X, e.Y) {
			s.statDrops.Add(1)
		}
		w.SpawnExplosion(e.X, e.Y, parameter.ColorEnemyDeath)
		w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
			Type: e.Type,
			X:    e.X,
			Y:    e.Y,
		})
		s.statKills.Add(1)
	}
	w.Enemies = alive
}
