package main

import (
	"fmt"
	"io"
	"math"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
)

// runHeadless drives the simulation synchronously with a sweeping pointer autopilot
// Stops after ticks or at game over and prints the result
func runHeadless(g *game, ticks int, pilot string, out io.Writer) error {
	if engine.NormalizePilotName(pilot) == "" {
		pilot = "AUTOPILOT"
	}
	g.world.PushEvent(event.EventGameStart, &event.GameStartPayload{Name: pilot})

	w, h := g.world.Width, g.world.Height
	n := 0
	for ; n < ticks; n++ {
		phase := 2 * math.Pi * float64(n) / 240
		g.input.SetPointer(w/2+math.Sin(phase)*w/3, h-100)
		g.scheduler.Tick()
		if snap := g.world.Snapshot(); snap.Session.Phase == engine.PhaseGameOver {
			n++
			break
		}
	}
	// Dispatch the game over notifications pushed in the last tick
	g.scheduler.Tick()
	g.session.Wait()

	snap := g.world.Snapshot()
	s := snap.Session
	_, err := fmt.Fprintf(out, "pilot=%s phase=%s ticks=%d score=%d credits=%d lives=%d submitted=%t\n",
		s.Name, s.Phase, n, s.Score, s.Credits, s.Lives, g.session.Submitted())
	return err
}
