package leaderboard

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	// ErrNotConnected is returned when no link to the leaderboard server is up
	ErrNotConnected = errors.New("leaderboard: not connected")
	// ErrClosed is returned after Stop
	ErrClosed = errors.New("leaderboard: closed")
)

// Service is the score backend seen by the game
// Implementations never panic on backend failure; they report false or deliver an empty list
type Service interface {
	// SubmitScore stores one score; returns false on any failure
	SubmitScore(ctx context.Context, name string, score int) bool

	// SubscribeToScores delivers the score-descending list now and on every change
	SubscribeToScores(fn func([]Entry)) (unsubscribe func())
}

// SubmitGuard allows one submission per session
type SubmitGuard struct {
	used atomic.Bool
}

// Claim returns true for the first caller after Reset
func (g *SubmitGuard) Claim() bool {
	return g.used.CompareAndSwap(false, true)
}

func (g *SubmitGuard) Reset() {
	g.used.Store(false)
}

func (g *SubmitGuard) Used() bool {
	return g.used.Load()
}
