package leaderboard

import (
	"context"
	"log"
)

// Local is an offline Service backed by a Board and an optional FileStore
type Local struct {
	board  *Board
	store  *FileStore
	logger *log.Logger
}

// NewLocal creates an offline leaderboard; store may be nil for memory only
func NewLocal(store *FileStore, logger *log.Logger) *Local {
	if logger == nil {
		logger = log.Default()
	}
	return &Local{
		board:  NewBoard(nil),
		store:  store,
		logger: logger,
	}
}

func (l *Local) Name() string {
	return "leaderboard"
}

func (l *Local) Dependencies() []string {
	return nil
}

// Init loads the stored list; a corrupt store is logged and ignored
func (l *Local) Init() error {
	if l.store == nil {
		return nil
	}
	entries, err := l.store.Load()
	if err != nil {
		l.logger.Printf("leaderboard: %v", err)
		return nil
	}
	l.board.Load(entries)
	return nil
}

func (l *Local) Start(ctx context.Context) error {
	return nil
}

func (l *Local) Stop() error {
	return nil
}

func (l *Local) SubmitScore(ctx context.Context, name string, score int) bool {
	if ctx.Err() != nil {
		return false
	}
	l.board.Add(name, score)
	if l.store != nil {
		if err := l.store.Save(l.board.Entries()); err != nil {
			l.logger.Printf("leaderboard: %v", err)
			return false
		}
	}
	return true
}

func (l *Local) SubscribeToScores(fn func([]Entry)) func() {
	return l.board.Subscribe(fn)
}
