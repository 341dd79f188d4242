package system

import (
	"time"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/input"
	"github.com/lixenwraith/stellar-assault/leaderboard"
)

// Deps are the external collaborators of the simulation
type Deps struct {
	Input         *input.State
	Leaderboard   leaderboard.Service // nil = offline
	Sound         SoundPlayer         // nil = silent
	SubmitTimeout time.Duration
}

// RegisterAll creates every gameplay system and adds it to the scheduler
// Returns the session system so callers can observe submissions
func RegisterAll(cs *engine.ClockScheduler, w *engine.World, deps Deps) *SessionSystem {
	if deps.Input == nil {
		deps.Input = input.NewState()
	}
	session := NewSessionSystem(w, deps.Leaderboard, deps.SubmitTimeout)

	cs.AddSystem(NewMovementSystem(w, deps.Input))
	cs.AddSystem(NewWeaponSystem(w))
	cs.AddSystem(NewMotionSystem(w))
	cs.AddSystem(NewSpawnSystem(w))
	cs.AddSystem(NewCombatSystem(w))
	cs.AddSystem(NewContactSystem(w))
	cs.AddSystem(NewTelemetrySystem(w))
	cs.AddSystem(NewEconomySystem(w))
	cs.AddSystem(session)
	cs.AddSystem(NewAudioSystem(w, deps.Sound))
	return session
}
