package system

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/leaderboard"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// testTick keeps timer arithmetic exact: 300ms is 30 ticks
const testTick = 10 * time.Millisecond

// constRand returns the same roll forever
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// scriptRand returns scripted rolls in order, then the fallback
type scriptRand struct {
	rolls    []float64
	fallback float64
	drawn    int
}

func (r *scriptRand) Float64() float64 {
	if r.drawn < len(r.rolls) {
		v := r.rolls[r.drawn]
		r.drawn++
		return v
	}
	r.drawn++
	return r.fallback
}

type builder func(w *engine.World) engine.System

func newWorld(t *testing.T, rng vmath.Rand) *engine.World {
	t.Helper()
	w, err := engine.NewWorld(engine.WorldConfig{
		Rand:   rng,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func newRig(t *testing.T, rng vmath.Rand, systems ...builder) (*engine.World, *engine.ClockScheduler) {
	t.Helper()
	w := newWorld(t, rng)
	cs, _ := engine.NewClockScheduler(w, nil, testTick)
	for _, b := range systems {
		cs.AddSystem(b(w))
	}
	return w, cs
}

func start(t *testing.T, w *engine.World, cs *engine.ClockScheduler) {
	t.Helper()
	w.PushEvent(event.EventGameStart, &event.GameStartPayload{Name: "ace"})
	cs.Tick()
	if !w.Playing() {
		t.Fatalf("phase = %s after start, want playing", w.Session.Phase)
	}
}

func ticks(cs *engine.ClockScheduler, n int) {
	for i := 0; i < n; i++ {
		cs.Tick()
	}
}

// stillEnemy is an enemy that neither moves nor wobbles
func stillEnemy(x, y float64, t component.EnemyType, hp int) component.EnemyComponent {
	return component.EnemyComponent{X: x, Y: y, HP: hp, MaxHP: hp, Type: t}
}

// fakeBoard records submissions
type fakeBoard struct {
	mu     sync.Mutex
	ok     bool
	names  []string
	scores []int
	subs   int
}

func (b *fakeBoard) SubmitScore(ctx context.Context, name string, score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.names = append(b.names, name)
	b.scores = append(b.scores, score)
	return b.ok
}

func (b *fakeBoard) SubscribeToScores(fn func([]leaderboard.Entry)) func() {
	b.mu.Lock()
	b.subs++
	b.mu.Unlock()
	fn([]leaderboard.Entry{})
	return func() {}
}

func (b *fakeBoard) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.names)
}

// recorder collects notification payloads
type recorder struct {
	killed  []event.EnemyKilledPayload
	hits    []event.PlayerHitPayload
	blocks  int
	pickups []event.PowerupCollectedPayload
	bombs   []event.BombDetonatedPayload
	bought  []event.UpgradePurchasedPayload
	over    []event.GameOverPayload
	saved   []event.ScoreSubmittedPayload
	resets  int
}

func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventPlayerHit,
		event.EventShieldBlocked,
		event.EventPowerupCollected,
		event.EventBombDetonated,
		event.EventUpgradePurchased,
		event.EventGameOver,
		event.EventScoreSubmitted,
		event.EventGameReset,
	}
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EnemyKilledPayload:
		r.killed = append(r.killed, *p)
	case *event.PlayerHitPayload:
		r.hits = append(r.hits, *p)
	case *event.PowerupCollectedPayload:
		r.pickups = append(r.pickups, *p)
	case *event.BombDetonatedPayload:
		r.bombs = append(r.bombs, *p)
	case *event.UpgradePurchasedPayload:
		r.bought = append(r.bought, *p)
	case *event.GameOverPayload:
		r.over = append(r.over, *p)
	case *event.ScoreSubmittedPayload:
		r.saved = append(r.saved, *p)
	}
	switch ev.Type {
	case event.EventShieldBlocked:
		r.blocks++
	case event.EventGameReset:
		r.resets++
	}
}

func eventGameOver(w *engine.World) (event.EventType, any) {
	return event.EventGameOver, &event.GameOverPayload{Name: w.Session.Name, Score: w.Session.Score}
}

func eventLivesDepleted() (event.EventType, any) {
	return event.EventLivesDepleted, nil
}
