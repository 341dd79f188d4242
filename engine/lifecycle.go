package engine

import (
	_ "embed"
	"strings"

	"github.com/lixenwraith/stellar-assault/engine/fsm"
	"github.com/lixenwraith/stellar-assault/event"
)

//go:embed session.toml
var sessionConfig []byte

// newLifecycle builds the session state machine from the embedded graph
func newLifecycle() (*fsm.Machine[*World], error) {
	m := fsm.NewMachine[*World]()

	m.RegisterGuard("HasPilotName", func(w *World, ev event.GameEvent) bool {
		p, ok := ev.Payload.(*event.GameStartPayload)
		return ok && strings.TrimSpace(p.Name) != ""
	})

	m.RegisterAction("SetPhase", func(w *World, _ event.GameEvent, arg string) {
		if phase, ok := ParsePhase(arg); ok {
			w.Session.Phase = phase
			w.Status.Strings.Get("session.phase").Store(phase.String())
		}
	})

	m.RegisterAction("StartSession", func(w *World, ev event.GameEvent, _ string) {
		name := ""
		if p, ok := ev.Payload.(*event.GameStartPayload); ok {
			name = NormalizePilotName(p.Name)
		}
		w.ResetSession(name)
		w.PushEvent(event.EventGameReset, nil)
		w.Logger.Printf("session: start pilot=%s", name)
	})

	m.RegisterAction("EndSession", func(w *World, _ event.GameEvent, _ string) {
		w.PushEvent(event.EventGameOver, &event.GameOverPayload{
			Name:  w.Session.Name,
			Score: w.Session.Score,
		})
		w.Logger.Printf("session: game over pilot=%s score=%d ticks=%d", w.Session.Name, w.Session.Score, w.Session.Ticks)
	})

	if err := m.LoadConfig(sessionConfig); err != nil {
		return nil, err
	}
	return m, nil
}
