package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// SpawnSystem rolls enemy arrivals each tick, scaled by score
//
// Single spawn: chance SpawnRateNormal, or SpawnRateHard past HardModeScore
// In hard mode an EliteChance roll makes it elite; otherwise a fast/normal split
// Waves: past HardModeScore, a WaveChance roll lines up 2-4 enemies across the width
type SpawnSystem struct {
	world *engine.World

	statEnemies *atomic.Int64
	statWaves   *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:       world,
		statEnemies: world.Status.Ints.Get("spawn.enemies"),
		statWaves:   world.Status.Ints.Get("spawn.waves"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statEnemies.Store(0)
	s.statWaves.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	w := s.world
	rate := parameter.SpawnRateNormal
	if w.Session.HardMode() {
		rate = parameter.SpawnRateHard
	}

	if vmath.Chance(w.Rand, rate) {
		w.SpawnEnemy(s.single())
		s.statEnemies.Add(1)
	}

	if w.Session.HardMode() && vmath.Chance(w.Rand, parameter.WaveChance) {
		for _, e := range s.wave() {
			w.SpawnEnemy(e)
			s.statEnemies.Add(1)
		}
		s.statWaves.Add(1)
	}
}

// single builds one enemy; random draws in order: elite, speed, [type], x, wobble
func (s *SpawnSystem) single() component.EnemyComponent {
	w := s.world
	score := w.Session.Score
	tier := float64(w.Session.Difficulty())

	e := component.EnemyComponent{Y: parameter.SpawnY}

	if w.Session.HardMode() && vmath.Chance(w.Rand, parameter.EliteChance) {
		e.Type = component.EnemyElite
		e.Speed = vmath.Range(w.Rand, parameter.EliteSpeedBase, parameter.EliteSpeedBase+parameter.EliteSpeedSpread) +
			tier*parameter.EliteSpeedPerTier
		e.HP = parameter.EliteBaseHP + w.Session.Difficulty()
	} else {
		e.Speed = vmath.Range(w.Rand, parameter.NormalSpeedBase, parameter.NormalSpeedBase+parameter.NormalSpeedSpread) +
			tier*parameter.NormalSpeedPerTier
		e.HP = parameter.NormalBaseHP + score/parameter.NormalHPScoreStep
		e.Type = component.EnemyNormal
		if w.Rand.Float64() > parameter.FastThreshold {
			e.Type = component.EnemyFast
		}
	}

	e.X = vmath.Range(w.Rand, parameter.SpawnEdgeMargin, w.Width-parameter.SpawnEdgeMargin)
	e.Wobble = vmath.Range(w.Rand, 0, parameter.WobbleMax)
	e.MaxHP = e.HP
	return e
}

// wave builds an evenly spaced, vertically staggered formation
func (s *SpawnSystem) wave() []component.EnemyComponent {
	w := s.world
	tier := float64(w.Session.Difficulty())
	hp := parameter.WaveBaseHP + w.Session.Difficulty()

	size := parameter.WaveMinSize + int(w.Rand.Float64()*parameter.WaveSizeSpread)
	spacing := w.Width / float64(size+1)

	out := make([]component.EnemyComponent, 0, size)
	for i := 0; i < size; i++ {
		e := component.EnemyComponent{
			X:     spacing * float64(i+1),
			Y:     parameter.SpawnY - float64(i)*parameter.WaveRowStagger,
			HP:    hp,
			MaxHP: hp,
			Type:  component.EnemyFast,
		}
		e.Speed = vmath.Range(w.Rand, parameter.WaveSpeedBase, parameter.WaveSpeedBase+parameter.WaveSpeedSpread) +
			tier*parameter.WaveSpeedPerTier
		e.Wobble = vmath.Range(w.Rand, 0, parameter.WobbleMax)
		if w.Rand.Float64() > parameter.WaveEliteChance {
			e.Type = component.EnemyElite
		}
		out = append(out, e)
	}
	return out
}
