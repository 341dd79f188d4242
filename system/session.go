package system

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/leaderboard"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// SessionSystem submits the final score once per session
// Submission runs off the tick goroutine; its result comes back as EventScoreSubmitted
type SessionSystem struct {
	world   *engine.World
	board   leaderboard.Service
	guard   *leaderboard.SubmitGuard
	timeout time.Duration
	logger  *log.Logger

	inflight sync.WaitGroup

	statSubmits *atomic.Int64
	statFailed  *atomic.Int64
}

// NewSessionSystem creates the system; board may be nil when running offline
func NewSessionSystem(world *engine.World, board leaderboard.Service, timeout time.Duration) *SessionSystem {
	if timeout <= 0 {
		timeout = parameter.SubmitTimeout
	}
	s := &SessionSystem{
		world:       world,
		board:       board,
		guard:       &leaderboard.SubmitGuard{},
		timeout:     timeout,
		logger:      world.Logger,
		statSubmits: world.Status.Ints.Get("leaderboard.submits"),
		statFailed:  world.Status.Ints.Get("leaderboard.failed"),
	}
	s.Init()
	return s
}

func (s *SessionSystem) Init() {
	s.guard.Reset()
}

func (s *SessionSystem) Name() string {
	return "session"
}

func (s *SessionSystem) Priority() int {
	return parameter.PrioritySession
}

func (s *SessionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventGameOver,
		event.EventScoreSubmitted,
	}
}

func (s *SessionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			s.submit(p.Name, p.Score)
		}
	case event.EventScoreSubmitted:
		if p, ok := ev.Payload.(*event.ScoreSubmittedPayload); ok {
			if p.OK {
				s.logger.Printf("leaderboard: saved %s %d", p.Name, p.Score)
			} else {
				s.statFailed.Add(1)
				s.logger.Printf("leaderboard: submit failed for %s %d", p.Name, p.Score)
			}
		}
	}
}

func (s *SessionSystem) Update() {}

// Submitted reports whether this session's score has been handed to the leaderboard
func (s *SessionSystem) Submitted() bool {
	return s.guard.Used()
}

// Wait blocks until in-flight submissions finish
func (s *SessionSystem) Wait() {
	s.inflight.Wait()
}

func (s *SessionSystem) submit(name string, score int) {
	if s.board == nil || name == "" || score <= 0 {
		return
	}
	if !s.guard.Claim() {
		return
	}
	s.statSubmits.Add(1)

	board, timeout, w := s.board, s.timeout, s.world
	s.inflight.Add(1)
	core.Go(func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ok := board.SubmitScore(ctx, name, score)
		w.PushEvent(event.EventScoreSubmitted, &event.ScoreSubmittedPayload{
			Name:  name,
			Score: score,
			OK:    ok,
		})
	})
}
