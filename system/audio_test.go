package system

import (
	"testing"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/event"
)

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(s core.SoundType) bool {
	p.played = append(p.played, s)
	return true
}

func TestAudioMapsNotifications(t *testing.T) {
	w := newWorld(t, constRand(0.5))
	player := &recordingPlayer{}
	s := NewAudioSystem(w, player).(*AudioSystem)

	tests := []struct {
		ev   event.GameEvent
		want core.SoundType
	}{
		{event.GameEvent{Type: event.EventEnemyKilled, Payload: &event.EnemyKilledPayload{Type: component.EnemyNormal}}, core.SoundExplosion},
		{event.GameEvent{Type: event.EventPlayerHit, Payload: &event.PlayerHitPayload{Lives: 2}}, core.SoundPlayerHit},
		{event.GameEvent{Type: event.EventShieldBlocked}, core.SoundShieldBlock},
		{event.GameEvent{Type: event.EventPowerupCollected, Payload: &event.PowerupCollectedPayload{}}, core.SoundPickup},
		{event.GameEvent{Type: event.EventBombDetonated, Payload: &event.BombDetonatedPayload{Count: 3}}, core.SoundBomb},
		{event.GameEvent{Type: event.EventUpgradePurchased, Payload: &event.UpgradePurchasedPayload{}}, core.SoundUpgrade},
		{event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{}}, core.SoundGameOver},
	}
	for _, tt := range tests {
		player.played = nil
		s.HandleEvent(tt.ev)
		if len(player.played) != 1 || player.played[0] != tt.want {
			t.Errorf("%s: played %v, want %v", tt.ev.Type, player.played, tt.want)
		}
	}
}

func TestAudioBombKillsSilent(t *testing.T) {
	w := newWorld(t, constRand(0.5))
	player := &recordingPlayer{}
	s := NewAudioSystem(w, player).(*AudioSystem)

	s.HandleEvent(event.GameEvent{Type: event.EventEnemyKilled, Payload: &event.EnemyKilledPayload{ByBomb: true}})
	if len(player.played) != 0 {
		t.Errorf("bomb kill played %v", player.played)
	}
}

func TestAudioWithoutPlayer(t *testing.T) {
	w := newWorld(t, constRand(0.5))
	s := NewAudioSystem(w, nil)
	h := s.(*AudioSystem)
	h.HandleEvent(event.GameEvent{Type: event.EventGameReset})
	h.HandleEvent(event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{}})
	s.Update()
}
