package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// ClockScheduler drives the world on a fixed tick
// Every tick drains the event queue into the lifecycle and router; systems and
// timers advance only while the session is playing
type ClockScheduler struct {
	world *World
	clock *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time
	tickCount        atomic.Uint64

	router *event.Router

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Non-blocking signal to the renderer after each tick
	updateDone chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler; the returned channel signals completed ticks
func NewClockScheduler(world *World, clock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		tickInterval: tickInterval,
		router:       event.NewRouter(),
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    world.Status.Ints.Get("engine.ticks"),
	}
	return cs, updateDone
}

// AddSystem registers a system with the world and, if it handles events, with the router
// Must be called before Start
func (cs *ClockScheduler) AddSystem(s System) {
	cs.world.AddSystem(s)
	if h, ok := s.(event.Handler); ok {
		cs.router.Register(h)
	}
}

// RegisterEventHandler adds a non-system handler, must be called before Start
func (cs *ClockScheduler) RegisterEventHandler(h event.Handler) {
	cs.router.Register(h)
}

// Start launches the scheduler goroutine
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns ticks processed since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Game time is frozen; keep draining commands at a slower cadence
			cs.Tick()
			sleepDuration = cs.tickInterval * parameter.PausedSleepMultiplier
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.Tick()

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				sleepDuration = cs.nextTickDeadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = cs.nextTickDeadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// Tick runs one scheduler cycle synchronously
// Exposed for headless drivers and tests
func (cs *ClockScheduler) Tick() {
	playing := false
	cs.world.RunSafe(func() {
		cs.world.frame.Add(1)
		cs.dispatchEvents()

		if cs.world.Playing() {
			cs.world.Session.Ticks++
			cs.world.Timers.Advance(cs.tickInterval)
			cs.world.UpdateLocked()
		}
		playing = cs.world.Playing()
	})

	// Clock follows the phase so a pause does not accumulate tick debt
	if playing {
		cs.clock.Resume()
	} else {
		cs.clock.Pause()
	}

	n := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(n))

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// dispatchEvents drains the queue into the lifecycle first, then the router
// Events pushed while dispatching are delivered in the same tick, bounded by MaxDispatchPasses
func (cs *ClockScheduler) dispatchEvents() {
	for pass := 0; pass < parameter.MaxDispatchPasses; pass++ {
		events := cs.world.Events.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			cs.world.Lifecycle.HandleEvent(cs.world, ev)
			cs.router.Dispatch(ev)
		}
	}
}
