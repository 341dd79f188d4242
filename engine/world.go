package engine

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/engine/fsm"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/status"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// Timer names owned by the world
const (
	TimerShield = "shield"
	TimerFire   = "weapon.fire"
)

// WorldConfig configures a new World; zero fields take defaults
type WorldConfig struct {
	Width     float64
	Height    float64
	TouchMode bool
	Rand      vmath.Rand
	Status    *status.Registry
	Logger    *log.Logger
}

// World is the single authoritative owner of simulation state
// Every mutation happens under the update lock, from the scheduler goroutine
type World struct {
	updateMutex sync.Mutex
	mu          sync.RWMutex // Guards systems

	Width     float64
	Height    float64
	TouchMode bool

	Player    component.PlayerComponent
	Bullets   []component.BulletComponent
	Enemies   []component.EnemyComponent
	Powerups  []component.PowerupComponent
	Particles []component.ParticleComponent
	Session   Session

	Timers    *TimerSet
	Rand      vmath.Rand
	Events    *event.EventQueue
	Status    *status.Registry
	Lifecycle *fsm.Machine[*World]
	Logger    *log.Logger

	nextEntityID core.Entity
	frame        atomic.Int64
	systems      []System
}

// NewWorld creates a world in the name entry phase
func NewWorld(cfg WorldConfig) (*World, error) {
	if cfg.Width <= 0 {
		cfg.Width = parameter.GameWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = parameter.GameHeight
	}
	if cfg.Rand == nil {
		cfg.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	w := &World{
		Width:        cfg.Width,
		Height:       cfg.Height,
		TouchMode:    cfg.TouchMode,
		Timers:       NewTimerSet(),
		Rand:         cfg.Rand,
		Events:       event.NewEventQueue(),
		Status:       cfg.Status,
		Logger:       cfg.Logger,
		nextEntityID: 1,
	}

	lifecycle, err := newLifecycle()
	if err != nil {
		return nil, fmt.Errorf("session lifecycle: %w", err)
	}
	w.Lifecycle = lifecycle
	w.Session = NewSession("")
	w.Player = w.startPlayer()

	if err := w.Lifecycle.Init(w); err != nil {
		return nil, fmt.Errorf("session lifecycle init: %w", err)
	}
	return w, nil
}

// AddSystem registers a system, keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

func (w *World) Lock() {
	w.updateMutex.Lock()
}

func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// UpdateLocked runs all systems; caller holds the update lock
func (w *World) UpdateLocked() {
	for _, s := range w.Systems() {
		s.Update()
	}
}

// FrameNumber returns the scheduler tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent queues an event for the next dispatch; safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Fire delivers an event to the session lifecycle synchronously
// Used when a transition must take effect inside the current tick
func (w *World) Fire(eventType event.EventType, payload any) bool {
	return w.Lifecycle.HandleEvent(w, event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Playing reports whether the simulation is advancing
func (w *World) Playing() bool {
	return w.Session.Phase == PhasePlaying
}

// NextID allocates a unique entity id; ids are never reused within a process
func (w *World) NextID() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// ResetSession restores every session field and clears all entity collections
// Pending timers are cancelled so no callback from the previous run can fire
func (w *World) ResetSession(name string) {
	w.Timers.CancelAll()

	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Powerups = w.Powerups[:0]
	w.Particles = w.Particles[:0]

	phase := w.Session.Phase
	w.Session = NewSession(name)
	w.Session.Phase = phase
	w.Player = w.startPlayer()

	w.Status.ResetInts()
}

func (w *World) startPlayer() component.PlayerComponent {
	return component.PlayerComponent{
		X:     w.Width / 2,
		Y:     w.Height - parameter.PlayerStartOffsetY,
		Speed: parameter.PlayerSpeed,
	}
}

// PlayerBounds returns the movement clamp rectangle
func (w *World) PlayerBounds() (minX, maxX, minY, maxY float64) {
	top := parameter.PlayerEdgeMargin
	if w.TouchMode {
		top = parameter.PlayerTouchTopBoundary
	}
	return parameter.PlayerEdgeMargin, w.Width - parameter.PlayerEdgeMargin,
		top, w.Height - parameter.TopPanelHeight - parameter.PlayerEdgeMargin
}
