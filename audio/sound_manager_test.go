package audio

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/stellar-assault/core"
)

type fakeOutput struct {
	initErr error
	inits   int
	played  []beep.Streamer
	locks   int
	closed  bool
}

func (f *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	f.inits++
	return f.initErr
}
func (f *fakeOutput) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeOutput) Lock()                { f.locks++ }
func (f *fakeOutput) Unlock()              {}
func (f *fakeOutput) Close()               { f.closed = true }

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func startedManager(t *testing.T, out *fakeOutput) *SoundManager {
	t.Helper()
	sm := newSoundManager(nil, out, quietLogger())
	if err := sm.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := sm.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return sm
}

func TestStartWithoutInit(t *testing.T) {
	sm := newSoundManager(nil, &fakeOutput{}, quietLogger())
	if err := sm.Start(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestPlayMixesEffect(t *testing.T) {
	out := &fakeOutput{}
	sm := startedManager(t, out)

	if len(out.played) != 1 {
		t.Fatalf("mixer should be attached once, got %d", len(out.played))
	}
	if !sm.Play(core.SoundBomb) {
		t.Fatal("expected bomb to play")
	}
	if sm.mixer.Len() != 1 {
		t.Errorf("expected 1 streamer in mixer, got %d", sm.mixer.Len())
	}
	if out.locks == 0 {
		t.Error("mixer must be modified under the output lock")
	}
}

func TestPlayThrottlesRepeats(t *testing.T) {
	sm := startedManager(t, &fakeOutput{})
	now := time.Unix(1000, 0)
	sm.now = func() time.Time { return now }

	if !sm.Play(core.SoundExplosion) {
		t.Fatal("first explosion should play")
	}
	if sm.Play(core.SoundExplosion) {
		t.Error("immediate repeat should be dropped")
	}
	if !sm.Play(core.SoundPickup) {
		t.Error("other sounds are throttled independently")
	}
	now = now.Add(time.Second)
	if !sm.Play(core.SoundExplosion) {
		t.Error("explosion should play after the gap")
	}
}

func TestMuteSilences(t *testing.T) {
	sm := startedManager(t, &fakeOutput{})
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Fatal("expected muted")
	}
	if sm.Play(core.SoundUpgrade) {
		t.Error("muted manager should not play")
	}
	if sm.ToggleMute() {
		t.Error("second toggle should unmute")
	}
	if !sm.Play(core.SoundUpgrade) {
		t.Error("unmuted manager should play")
	}
}

func TestDeviceFailureRunsSilent(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	sm := startedManager(t, out)

	if sm.Enabled() {
		t.Error("manager should be disabled")
	}
	if len(out.played) != 0 {
		t.Error("mixer should not be attached")
	}
	if sm.Play(core.SoundGameOver) {
		t.Error("disabled manager should not play")
	}
}

func TestDisabledConfigSkipsDevice(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	sm := newSoundManager(cfg, out, quietLogger())
	sm.Init()
	sm.Start(context.Background())

	if out.inits != 0 {
		t.Error("device should not be opened when disabled")
	}
	if sm.Play(core.SoundPlayerHit) {
		t.Error("disabled manager should not play")
	}
}

func TestStopClearsAndCloses(t *testing.T) {
	out := &fakeOutput{}
	sm := startedManager(t, out)
	sm.Play(core.SoundBomb)

	if err := sm.Stop(); err != nil {
		t.Fatal(err)
	}
	if !out.closed || sm.mixer.Len() != 0 {
		t.Error("stop should clear the mixer and close the device")
	}
	if sm.Play(core.SoundBomb) {
		t.Error("stopped manager should not play")
	}
	if err := sm.Stop(); err != nil {
		t.Errorf("second stop: %v", err)
	}
}
