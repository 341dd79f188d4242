package system

import (
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// SoundPlayer plays a sound without blocking; returns false if dropped
type SoundPlayer interface {
	Play(core.SoundType) bool
}

// AudioSystem turns gameplay notifications into sound effects
// Decouples gameplay systems from the audio backend
type AudioSystem struct {
	world  *engine.World
	player SoundPlayer

	enabled bool
}

// NewAudioSystem creates an audio system; player may be nil if audio is disabled
func NewAudioSystem(world *engine.World, player SoundPlayer) engine.System {
	s := &AudioSystem{
		world:  world,
		player: player,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = s.player != nil
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
		event.EventPlayerHit,
		event.EventShieldBlocked,
		event.EventPowerupCollected,
		event.EventBombDetonated,
		event.EventUpgradePurchased,
		event.EventGameOver,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventEnemyKilled:
		// A bomb plays once for the whole blast
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok && p.ByBomb {
			return
		}
		s.player.Play(core.SoundExplosion)
	case event.EventPlayerHit:
		s.player.Play(core.SoundPlayerHit)
	case event.EventShieldBlocked:
		s.player.Play(core.SoundShieldBlock)
	case event.EventPowerupCollected:
		s.player.Play(core.SoundPickup)
	case event.EventBombDetonated:
		s.player.Play(core.SoundBomb)
	case event.EventUpgradePurchased:
		s.player.Play(core.SoundUpgrade)
	case event.EventGameOver:
		s.player.Play(core.SoundGameOver)
	}
}

func (s *AudioSystem) Update() {}
