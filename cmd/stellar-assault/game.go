package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/lixenwraith/stellar-assault/audio"
	"github.com/lixenwraith/stellar-assault/config"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/engine/service"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/input"
	"github.com/lixenwraith/stellar-assault/leaderboard"
	"github.com/lixenwraith/stellar-assault/system"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// gameOptions are the command-line choices that shape assembly
type gameOptions struct {
	offline bool
	silent  bool
	seed    uint64
}

// game is the assembled simulation with its services
type game struct {
	world      *engine.World
	scheduler  *engine.ClockScheduler
	updates    <-chan struct{} // Signalled after every completed tick
	hub        *service.Hub
	input      *input.State
	sound      *audio.SoundManager
	board      leaderboard.Service
	client     *leaderboard.Client // nil when offline
	scoreboard *leaderboard.Scoreboard
	session    *system.SessionSystem

	unsubscribe func()
}

func newGame(cfg *config.Config, opts gameOptions) (*game, error) {
	logger := log.Default()

	wc := engine.WorldConfig{
		Width:     cfg.Game.Width,
		Height:    cfg.Game.Height,
		TouchMode: cfg.Game.TouchMode,
		Logger:    logger,
	}
	if opts.seed != 0 {
		wc.Rand = vmath.NewFastRand(opts.seed)
	}
	world, err := engine.NewWorld(wc)
	if err != nil {
		return nil, err
	}

	g := &game{
		world:      world,
		hub:        service.NewHub(logger),
		input:      input.NewState(),
		scoreboard: leaderboard.NewScoreboard(),
	}
	g.scheduler, g.updates = engine.NewClockScheduler(world, nil, cfg.TickInterval())

	if opts.offline || cfg.Leaderboard.URL == "" {
		var store *leaderboard.FileStore
		if path := localScoresPath(cfg.Leaderboard.CachePath); path != "" {
			store = leaderboard.NewFileStore(path)
		}
		local := leaderboard.NewLocal(store, logger)
		g.board = local
		if err := g.hub.Register(local); err != nil {
			return nil, err
		}
	} else {
		g.client = leaderboard.NewClient(cfg.LeaderboardSettings(), logger)
		g.board = g.client
		if err := g.hub.Register(g.client); err != nil {
			return nil, err
		}
	}

	ac := cfg.AudioSettings()
	if opts.silent {
		ac.Enabled = false
	}
	g.sound = audio.NewSoundManager(ac, logger)
	if err := g.hub.Register(g.sound); err != nil {
		return nil, err
	}

	g.session = system.RegisterAll(g.scheduler, world, system.Deps{
		Input:         g.input,
		Leaderboard:   g.board,
		Sound:         g.sound,
		SubmitTimeout: cfg.Leaderboard.SubmitTimeout.Duration,
	})
	g.scheduler.RegisterEventHandler(&scoreTracker{board: g.scoreboard, lastID: g.lastSubmissionID})
	return g, nil
}

// start brings up services and subscribes the scoreboard
func (g *game) start(ctx context.Context) error {
	if err := g.hub.InitAll(); err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := g.hub.StartAll(ctx); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	g.unsubscribe = g.board.SubscribeToScores(g.scoreboard.Update)
	return nil
}

// stop halts the scheduler, lets pending submissions finish and stops services
func (g *game) stop() {
	g.scheduler.Stop()
	g.session.Wait()
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.hub.StopAll()
}

func (g *game) online() bool {
	return g.client != nil && g.client.Connected()
}

func (g *game) lastSubmissionID() string {
	if g.client == nil {
		return ""
	}
	return g.client.LastSubmission()
}

// localScoresPath keeps offline scores next to, but apart from, the server cache
func localScoresPath(cachePath string) string {
	if cachePath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(cachePath), "local-"+filepath.Base(cachePath))
}

// scoreTracker marks the finished session on the scoreboard so its rank can be shown
type scoreTracker struct {
	board  *leaderboard.Scoreboard
	lastID func() string
}

func (t *scoreTracker) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset, event.EventGameOver, event.EventScoreSubmitted}
}

func (t *scoreTracker) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		t.board.ClearPlayer()
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			t.board.MarkPlayer(p.Name, p.Score, "")
		}
	case event.EventScoreSubmitted:
		if p, ok := ev.Payload.(*event.ScoreSubmittedPayload); ok && p.OK {
			t.board.MarkPlayer(p.Name, p.Score, t.lastID())
		}
	}
}

// frameDue reports whether a redraw has new simulation state to show
// Menus redraw every frame for the blinking cursor and typed input
func (g *game) frameDue(playing bool) bool {
	select {
	case <-g.updates:
		return true
	default:
		return !playing
	}
}
