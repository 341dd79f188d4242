package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/status"
)

// TelemetrySystem mirrors session scalars and collection sizes into the status registry
type TelemetrySystem struct {
	world *engine.World

	statScore     *atomic.Int64
	statCredits   *atomic.Int64
	statLives     *atomic.Int64
	statFireRate  *atomic.Int64
	statDamage    *atomic.Int64
	statBullets   *atomic.Int64
	statEnemies   *atomic.Int64
	statPowerups  *atomic.Int64
	statParticles *atomic.Int64
	statShield    *atomic.Bool
	statSpecial   *status.AtomicString
	statElapsed   *status.AtomicFloat
}

func NewTelemetrySystem(world *engine.World) engine.System {
	reg := world.Status
	s := &TelemetrySystem{
		world:         world,
		statScore:     reg.Ints.Get("session.score"),
		statCredits:   reg.Ints.Get("session.credits"),
		statLives:     reg.Ints.Get("player.lives"),
		statFireRate:  reg.Ints.Get("weapon.fire_rate_ms"),
		statDamage:    reg.Ints.Get("weapon.damage"),
		statBullets:   reg.Ints.Get("entities.bullets"),
		statEnemies:   reg.Ints.Get("entities.enemies"),
		statPowerups:  reg.Ints.Get("entities.powerups"),
		statParticles: reg.Ints.Get("entities.particles"),
		statShield:    reg.Bools.Get("player.shield"),
		statSpecial:   reg.Strings.Get("weapon.special"),
		statElapsed:   reg.Floats.Get("session.elapsed"),
	}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) Update() {
	w := s.world
	ss := &w.Session

	s.statScore.Store(int64(ss.Score))
	s.statCredits.Store(int64(ss.Credits))
	s.statLives.Store(int64(ss.Lives))
	s.statFireRate.Store(ss.FireRate.Milliseconds())
	s.statDamage.Store(int64(ss.BulletDamage))
	s.statBullets.Store(int64(len(w.Bullets)))
	s.statEnemies.Store(int64(len(w.Enemies)))
	s.statPowerups.Store(int64(len(w.Powerups)))
	s.statParticles.Store(int64(len(w.Particles)))
	s.statShield.Store(ss.ShieldActive)
	s.statSpecial.Store(ss.Special.String())
	s.statElapsed.Set(ss.Elapsed().Seconds())
}
