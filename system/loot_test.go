package system

import (
	"testing"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

func TestRollPowerupBands(t *testing.T) {
	tests := []struct {
		roll float64
		want component.PowerupType
	}{
		{0, component.PowerupBomb},
		{0.049, component.PowerupBomb},
		{0.05, component.PowerupShield},
		{0.149, component.PowerupShield},
		{0.15, component.PowerupTriple},
		{0.449, component.PowerupTriple},
		{0.45, component.PowerupDual},
		{0.749, component.PowerupDual},
		{0.75, component.PowerupSurround},
		{0.999, component.PowerupSurround},
	}
	for _, tt := range tests {
		if got := RollPowerup(tt.roll); got != tt.want {
			t.Errorf("RollPowerup(%v) = %s, want %s", tt.roll, got, tt.want)
		}
	}
}

func TestLootDropOnKill(t *testing.T) {
	// drop chance, then type roll
	rng := &scriptRand{rolls: []float64{0.1, 0.5}, fallback: 0.99}
	w, cs := newRig(t, rng, NewCombatSystem)
	start(t, w, cs)
	rng.drawn = 0

	w.SpawnEnemy(stillEnemy(80, 90, component.EnemyNormal, 1))
	w.SpawnBullet(80, 90, 0, -8, 1)
	cs.Tick()

	if len(w.Powerups) != 1 {
		t.Fatalf("powerups = %d, want 1", len(w.Powerups))
	}
	p := w.Powerups[0]
	if p.Type != component.PowerupDual || p.X != 80 || p.Y != 90 {
		t.Errorf("powerup = %+v", p)
	}
	if got := w.Status.Ints.Get("loot.drops").Load(); got != 1 {
		t.Errorf("loot.drops = %d, want 1", got)
	}
}

func TestLootNoDropOnFailedRoll(t *testing.T) {
	w, cs := newRig(t, constRand(parameter.PowerupDropChance), NewCombatSystem)
	start(t, w, cs)

	w.SpawnEnemy(stillEnemy(80, 90, component.EnemyElite, 1))
	w.SpawnBullet(80, 90, 0, -8, 1)
	cs.Tick()
	if len(w.Enemies) != 0 {
		t.Fatal("enemy not killed")
	}
	if len(w.Powerups) != 0 {
		t.Errorf("dropped on a roll equal to the chance")
	}
}

// pauser pushes a pause toggle from inside the tick, the way the input goroutine can
type pauser struct {
	world *engine.World
	armed bool
}

func (p *pauser) Init()         {}
func (p *pauser) Name() string  { return "pauser" }
func (p *pauser) Priority() int { return parameter.PriorityCombat - 1 }
func (p *pauser) Update() {
	if p.armed {
		p.world.PushEvent(event.EventPauseToggle, nil)
		p.armed = false
	}
}

func TestLootRolledInKillTickDespitePause(t *testing.T) {
	w, cs := newRig(t, constRand(0), NewCombatSystem)
	pause := &pauser{world: w}
	cs.AddSystem(pause)
	start(t, w, cs)

	w.SpawnEnemy(stillEnemy(200, 200, component.EnemyNormal, 1))
	w.SpawnBullet(200, 200, 0, -8, 1)
	pause.armed = true
	cs.Tick()

	if len(w.Enemies) != 0 || w.Session.Score != parameter.ScoreNormal {
		t.Fatalf("enemies=%d score=%d, want kill", len(w.Enemies), w.Session.Score)
	}
	if len(w.Powerups) != 1 {
		t.Fatalf("powerups = %d after kill tick, want 1", len(w.Powerups))
	}

	cs.Tick()
	if w.Session.Phase != engine.PhasePaused {
		t.Fatalf("phase = %s, want paused", w.Session.Phase)
	}
	if len(w.Powerups) != 1 {
		t.Errorf("powerups = %d while paused, want 1", len(w.Powerups))
	}

	w.PushEvent(event.EventPauseToggle, nil)
	cs.Tick()
	if !w.Playing() || len(w.Powerups) != 1 {
		t.Errorf("after resume: phase=%s powerups=%d", w.Session.Phase, len(w.Powerups))
	}
}

func TestApplyPowerup(t *testing.T) {
	w := newWorld(t, constRand(0.5))

	ApplyPowerup(w, component.PowerupShield)
	if !w.Session.ShieldActive || w.Timers.Remaining(engine.TimerShield) != parameter.ShieldPickupDuration {
		t.Errorf("shield pickup: active=%v remaining=%v", w.Session.ShieldActive, w.Timers.Remaining(engine.TimerShield))
	}

	ApplyPowerup(w, component.PowerupSurround)
	w.Session.SpecialTime = 1
	ApplyPowerup(w, component.PowerupTriple)
	if w.Session.Special != component.WeaponTriple || w.Session.SpecialTime != parameter.SpecialWeaponDuration {
		t.Errorf("special = %s/%f, want triple with full timer", w.Session.Special, w.Session.SpecialTime)
	}

	ApplyPowerup(w, component.PowerupBomb)
	if !w.Session.BombAvailable {
		t.Error("bomb not granted")
	}
}
