package engine

import (
	"io"
	"log"
	"testing"

	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// recorder counts routed events by type
type recorder struct {
	types  []event.EventType
	counts map[event.EventType]int
	last   map[event.EventType]event.GameEvent
}

func newRecorder(types ...event.EventType) *recorder {
	return &recorder{
		types:  types,
		counts: make(map[event.EventType]int),
		last:   make(map[event.EventType]event.GameEvent),
	}
}

func (r *recorder) EventTypes() []event.EventType { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.counts[ev.Type]++
	r.last[ev.Type] = ev
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(WorldConfig{
		Rand:   vmath.NewFastRand(42),
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func newTestScheduler(t *testing.T) (*World, *ClockScheduler) {
	t.Helper()
	w := newTestWorld(t)
	cs, _ := NewClockScheduler(w, nil, 0)
	return w, cs
}

func startSession(t *testing.T, w *World, cs *ClockScheduler, name string) {
	t.Helper()
	w.PushEvent(event.EventGameStart, &event.GameStartPayload{Name: name})
	cs.Tick()
	if w.Session.Phase != PhasePlaying {
		t.Fatalf("phase = %s after start, want playing", w.Session.Phase)
	}
}
