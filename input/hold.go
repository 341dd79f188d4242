package input

import (
	"sync"
	"time"
)

// HoldTracker synthesizes key-up for terminals that only report presses
// Each press (including auto-repeat) extends the hold; a key not seen for
// the hold window is released
type HoldTracker struct {
	mu       sync.Mutex
	state    *State
	window   time.Duration
	lastSeen map[IntentType]time.Time
}

func NewHoldTracker(state *State, window time.Duration) *HoldTracker {
	return &HoldTracker{
		state:    state,
		window:   window,
		lastSeen: make(map[IntentType]time.Time),
	}
}

// Press records a key press at now
func (h *HoldTracker) Press(i IntentType, now time.Time) {
	if !i.IsMovement() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	// Opposite directions cancel so a direction change is immediate
	if opp := opposite(i); opp != IntentNone {
		if _, ok := h.lastSeen[opp]; ok {
			delete(h.lastSeen, opp)
			h.state.KeyUp(opp)
		}
	}
	h.lastSeen[i] = now
	h.state.KeyDown(i)
}

// Expire releases keys not pressed within the window
func (h *HoldTracker) Expire(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, t := range h.lastSeen {
		if now.Sub(t) >= h.window {
			delete(h.lastSeen, i)
			h.state.KeyUp(i)
		}
	}
}

// Held returns the number of keys currently held
func (h *HoldTracker) Held() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.lastSeen)
}

func opposite(i IntentType) IntentType {
	switch i {
	case IntentMoveLeft:
		return IntentMoveRight
	case IntentMoveRight:
		return IntentMoveLeft
	case IntentMoveUp:
		return IntentMoveDown
	case IntentMoveDown:
		return IntentMoveUp
	default:
		return IntentNone
	}
}
