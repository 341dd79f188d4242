package leaderboard

import (
	"strconv"
	"sync"
	"time"
)

// Board is a sorted in-memory score list with change subscribers
type Board struct {
	mu      sync.Mutex
	entries []Entry
	seq     uint64
	now     func() time.Time

	subs    map[int]func([]Entry)
	nextSub int
}

// NewBoard creates a board; a nil clock uses time.Now
func NewBoard(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{
		now:  now,
		subs: make(map[int]func([]Entry)),
	}
}

// Load replaces the contents without notifying subscribers
func (b *Board) Load(entries []Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = cloneEntries(entries)
	sortEntries(b.entries)
	b.seq = uint64(len(b.entries))
}

// Add stores a sanitized entry and notifies subscribers
func (b *Board) Add(name string, score int) Entry {
	b.mu.Lock()
	b.seq++
	date := b.now().UTC()
	e := Entry{
		ID:    strconv.FormatInt(date.UnixNano(), 36) + "-" + strconv.FormatUint(b.seq, 36),
		Name:  SanitizeName(name),
		Score: ClampScore(score),
		Date:  date,
	}
	b.entries = append(b.entries, e)
	sortEntries(b.entries)
	snapshot, subs := b.snapshotLocked()
	b.mu.Unlock()

	notify(subs, snapshot)
	return e
}

// Entries returns a copy in rank order
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneEntries(b.entries)
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Subscribe registers fn and calls it once with the current list
func (b *Board) Subscribe(fn func([]Entry)) func() {
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	snapshot := cloneEntries(b.entries)
	b.mu.Unlock()

	fn(snapshot)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Board) snapshotLocked() ([]Entry, []func([]Entry)) {
	subs := make([]func([]Entry), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	return cloneEntries(b.entries), subs
}

func notify(subs []func([]Entry), entries []Entry) {
	for _, fn := range subs {
		fn(cloneEntries(entries))
	}
}
