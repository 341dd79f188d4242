package leaderboard

import "sync"

// Scoreboard holds the latest score list for display and locates the current player in it
type Scoreboard struct {
	mu      sync.RWMutex
	entries []Entry
	name    string
	score   int
	id      string
	marked  bool
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Update replaces the list; usable directly as a SubscribeToScores callback
func (sb *Scoreboard) Update(entries []Entry) {
	sb.mu.Lock()
	sb.entries = cloneEntries(entries)
	sb.mu.Unlock()
}

// MarkPlayer records the finished session; id may be empty when the backend returned none
func (sb *Scoreboard) MarkPlayer(name string, score int, id string) {
	sb.mu.Lock()
	sb.name = SanitizeName(name)
	sb.score = ClampScore(score)
	sb.id = id
	sb.marked = true
	sb.mu.Unlock()
}

func (sb *Scoreboard) ClearPlayer() {
	sb.mu.Lock()
	sb.name, sb.score, sb.id, sb.marked = "", 0, "", false
	sb.mu.Unlock()
}

// Rank returns the 1-based position of the marked player and the list size
// An id match wins; otherwise the first entry with equal name and score; 0 if absent
func (sb *Scoreboard) Rank() (rank, total int) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	total = len(sb.entries)
	if !sb.marked {
		return 0, total
	}
	if sb.id != "" {
		for i, e := range sb.entries {
			if e.ID == sb.id {
				return i + 1, total
			}
		}
	}
	for i, e := range sb.entries {
		if e.Name == sb.name && e.Score == sb.score {
			return i + 1, total
		}
	}
	return 0, total
}

// Top returns up to n leading entries
func (sb *Scoreboard) Top(n int) []Entry {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if n > len(sb.entries) {
		n = len(sb.entries)
	}
	if n <= 0 {
		return nil
	}
	return cloneEntries(sb.entries[:n])
}

func (sb *Scoreboard) Entries() []Entry {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return cloneEntries(sb.entries)
}

func (sb *Scoreboard) Len() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return len(sb.entries)
}
