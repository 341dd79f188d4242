package system

import (
	"testing"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

func TestPatternShapes(t *testing.T) {
	tests := []struct {
		mode  component.WeaponMode
		shots int
	}{
		{component.WeaponNone, 1},
		{component.WeaponTriple, 3},
		{component.WeaponDual, 2},
		{component.WeaponSurround, 4},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := len(Pattern(tt.mode)); got != tt.shots {
				t.Errorf("shots = %d, want %d", got, tt.shots)
			}
		})
	}

	// Every surround shot leaves along one axis only
	for _, s := range Pattern(component.WeaponSurround) {
		if s.VX != 0 && s.VY != 0 {
			t.Errorf("diagonal surround shot %+v", s)
		}
	}
	if s := Pattern(component.WeaponNone)[0]; s.DY != -parameter.BulletMuzzleOffset || s.VY != -parameter.BulletSpeed {
		t.Errorf("default shot = %+v", s)
	}
}

func TestFireCadence(t *testing.T) {
	w, cs := newRig(t, constRand(0.5), NewWeaponSystem)
	start(t, w, cs) // arms the fire timer

	steps := int(parameter.DefaultFireRate / testTick)
	ticks(cs, steps-1)
	if len(w.Bullets) != 0 {
		t.Fatalf("fired early: %d bullets", len(w.Bullets))
	}
	cs.Tick()
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d after one period, want 1", len(w.Bullets))
	}
	b := w.Bullets[0]
	if b.X != w.Player.X || b.Y != w.Player.Y-parameter.BulletMuzzleOffset || b.Damage != 1 {
		t.Errorf("bullet = %+v", b)
	}

	ticks(cs, steps)
	if len(w.Bullets) != 2 {
		t.Errorf("bullets = %d after two periods, want 2", len(w.Bullets))
	}
}

func TestFireReadsCurrentState(t *testing.T) {
	w, cs := newRig(t, constRand(0.5), NewWeaponSystem)
	start(t, w, cs)

	steps := int(parameter.DefaultFireRate / testTick)
	ticks(cs, steps-1)
	w.Player.X = 123
	w.Session.BulletDamage = 4
	w.Session.Special = component.WeaponDual
	w.Session.SpecialTime = 5
	cs.Tick()

	if len(w.Bullets) != 2 {
		t.Fatalf("bullets = %d, want dual pair", len(w.Bullets))
	}
	for _, b := range w.Bullets {
		if b.Damage != 4 {
			t.Errorf("damage = %d, want 4", b.Damage)
		}
	}
	if w.Bullets[0].X != 123-parameter.DualSideOffset {
		t.Errorf("left bullet x = %f", w.Bullets[0].X)
	}
}

func TestFireRateUpgradeRestartsInterval(t *testing.T) {
	w, cs := newRig(t, constRand(0.5), NewWeaponSystem, NewEconomySystem)
	start(t, w, cs)
	ticks(cs, 5)

	w.Session.Credits = parameter.CostFireRate
	w.PushEvent(event.EventUpgradeFireRateRequest, nil)
	cs.Tick()

	want := parameter.DefaultFireRate - parameter.FireRateStep - testTick
	if got := w.Timers.Remaining(engine.TimerFire); got != want {
		t.Errorf("remaining = %v, want %v", got, want)
	}
}

func TestSpecialWeaponExpires(t *testing.T) {
	w, cs := newRig(t, constRand(0.5), NewWeaponSystem)
	start(t, w, cs)

	w.GrantSpecial(component.WeaponSurround)
	w.Session.SpecialTime = 2 * parameter.TickSeconds
	cs.Tick()
	if w.Session.Special != component.WeaponSurround {
		t.Fatal("special expired early")
	}
	cs.Tick()
	if w.Session.Special != component.WeaponNone || w.Session.SpecialTime != 0 {
		t.Errorf("special = %s/%f, want none/0", w.Session.Special, w.Session.SpecialTime)
	}
}

func TestSpecialPausedDoesNotCountDown(t *testing.T) {
	w, cs := newRig(t, constRand(0.5), NewWeaponSystem)
	start(t, w, cs)
	w.GrantSpecial(component.WeaponTriple)

	w.PushEvent(event.EventPauseToggle, nil)
	cs.Tick()
	ticks(cs, 100)

	if w.Session.SpecialTime != parameter.SpecialWeaponDuration {
		t.Errorf("special time = %f while paused", w.Session.SpecialTime)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("fired while paused")
	}
}
