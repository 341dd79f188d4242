package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/stellar-assault/config"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/leaderboard"
)

func offlineGame(t *testing.T) *game {
	t.Helper()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Leaderboard.CachePath = filepath.Join(t.TempDir(), "scores.msgpack")

	g, err := newGame(cfg, gameOptions{offline: true, silent: true, seed: 7})
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if err := g.start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(g.stop)
	return g
}

func TestOfflineGameAssembly(t *testing.T) {
	g := offlineGame(t)
	if g.client != nil || g.online() {
		t.Error("offline game must not use the websocket client")
	}
	if _, ok := g.board.(*leaderboard.Local); !ok {
		t.Errorf("board = %T, want *leaderboard.Local", g.board)
	}
	names := g.hub.Names()
	if len(names) != 2 {
		t.Errorf("services = %v, want leaderboard and audio", names)
	}
}

func TestHeadlessRun(t *testing.T) {
	g := offlineGame(t)
	var out bytes.Buffer
	if err := runHeadless(g, 120, "tester", &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	line := out.String()
	for _, want := range []string{"pilot=TESTER", "phase=playing", "ticks=120"} {
		if !strings.Contains(line, want) {
			t.Errorf("output %q missing %q", line, want)
		}
	}
}

func TestHeadlessBlankNameUsesAutopilot(t *testing.T) {
	g := offlineGame(t)
	var out bytes.Buffer
	if err := runHeadless(g, 5, "  ", &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "pilot=AUTOPILOT") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLocalScoresPath(t *testing.T) {
	if got := localScoresPath(filepath.Join("data", "scores.msgpack")); got != filepath.Join("data", "local-scores.msgpack") {
		t.Errorf("localScoresPath = %q", got)
	}
	if localScoresPath("") != "" {
		t.Error("empty cache path should stay empty")
	}
}

func TestScoreTrackerMarksPlayer(t *testing.T) {
	board := leaderboard.NewScoreboard()
	board.Update([]leaderboard.Entry{
		{ID: "x1", Name: "ACE", Score: 500},
		{ID: "x2", Name: "ACE", Score: 500},
	})
	id := ""
	tr := &scoreTracker{board: board, lastID: func() string { return id }}

	tr.HandleEvent(event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{Name: "ACE", Score: 500}})
	if rank, _ := board.Rank(); rank != 1 {
		t.Errorf("name match rank = %d, want 1", rank)
	}

	id = "x2"
	tr.HandleEvent(event.GameEvent{Type: event.EventScoreSubmitted, Payload: &event.ScoreSubmittedPayload{Name: "ACE", Score: 500, OK: true}})
	if rank, _ := board.Rank(); rank != 2 {
		t.Errorf("id match rank = %d, want 2", rank)
	}

	tr.HandleEvent(event.GameEvent{Type: event.EventGameReset})
	if rank, _ := board.Rank(); rank != 0 {
		t.Errorf("reset should clear the mark, rank = %d", rank)
	}
}

func TestFrameDueFollowsTicks(t *testing.T) {
	g := offlineGame(t)
	g.frameDue(true) // drain anything left from assembly

	if g.frameDue(true) {
		t.Error("frame due during play with no completed tick")
	}
	g.scheduler.Tick()
	if !g.frameDue(true) {
		t.Error("frame not due after a completed tick")
	}
	if g.frameDue(true) {
		t.Error("one tick produced two frames")
	}
	if !g.frameDue(false) {
		t.Error("menus must redraw every frame")
	}
}
