package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/stellar-assault/config"
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/input"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/render"
	"github.com/lixenwraith/stellar-assault/render/renderer"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "Path to config.toml")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/stellar-assault.log")
	offlineFlag  = flag.Bool("offline", false, "Keep scores locally instead of using the leaderboard server")
	nameFlag     = flag.String("name", "", "Prefill the pilot name")
	headlessFlag = flag.Int("headless", 0, "Run N ticks without a terminal using the autopilot and print the result")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: %v\n", err)
		return 1
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	headless := *headlessFlag > 0
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stellar-assault: stdout is not a terminal (use -headless N to run without one)")
		return 1
	}

	g, err := newGame(cfg, gameOptions{offline: *offlineFlag, silent: headless, seed: *seedFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: %v\n", err)
		return 1
	}
	keys := input.DefaultKeyTable()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := g.start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: %v\n", err)
		return 1
	}
	defer g.stop()

	if headless {
		if err := runHeadless(g, *headlessFlag, *nameFlag, os.Stdout); err != nil {
			log.Printf("headless: %v", err)
			return 1
		}
		return 0
	}
	return runTerminal(g, keys)
}

func runTerminal(g *game, keys *input.KeyTable) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "stellar-assault: init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSTELLAR ASSAULT CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	orchestrator := render.NewRenderOrchestrator(screen)
	renderer.RegisterAll(orchestrator, uint64(time.Now().UnixNano()))

	fe := newFrontend(g.world, g.input, keys, g.sound, *nameFlag)
	g.scheduler.Start()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				orchestrator.Resize()
				continue
			}
			if fe.handleEvent(ev) {
				return 0
			}

		case now := <-frameTicker.C:
			fe.hold.Expire(now)
			if !g.frameDue(fe.phase == engine.PhasePlaying) {
				continue
			}

			snap := g.world.Snapshot()
			fe.observe(snap.Session.Phase)

			w, h := orchestrator.Size()
			rc := render.NewRenderContext(&snap, w, h)
			rc.NameInput = fe.nameInput()
			rc.Muted = fe.muted()
			rc.Online = g.online()
			rc.Scoreboard = g.scoreboard
			fe.layout = rc

			orchestrator.RenderFrame(rc)
		}
	}
}
