package engine

import (
	"sort"
	"time"
)

// TimerSet holds named game-time timers owned by the world
// Timers advance only when the scheduler advances them, so pausing the session freezes them
// Arming a name that is already armed replaces the old timer; there is never more than one per name
type TimerSet struct {
	timers map[string]*gameTimer
	order  []string // scratch, reused across Advance calls
	now    time.Duration
}

type gameTimer struct {
	remaining time.Duration
	period    time.Duration // 0 = one-shot
	fn        func()
}

func NewTimerSet() *TimerSet {
	return &TimerSet{timers: make(map[string]*gameTimer)}
}

// After arms a one-shot timer
func (ts *TimerSet) After(name string, d time.Duration, fn func()) {
	ts.arm(name, d, 0, fn)
}

// Every arms a repeating timer; the first firing is one period from now
func (ts *TimerSet) Every(name string, period time.Duration, fn func()) {
	if period <= 0 {
		return
	}
	ts.arm(name, period, period, fn)
}

func (ts *TimerSet) arm(name string, d, period time.Duration, fn func()) {
	ts.timers[name] = &gameTimer{remaining: d, period: period, fn: fn}
}

// Cancel disarms a timer; returns true if it was armed
func (ts *TimerSet) Cancel(name string) bool {
	if _, ok := ts.timers[name]; !ok {
		return false
	}
	delete(ts.timers, name)
	return true
}

// CancelAll disarms every timer and resets the elapsed counter
func (ts *TimerSet) CancelAll() {
	clear(ts.timers)
	ts.now = 0
}

// Active returns true if the named timer is armed
func (ts *TimerSet) Active(name string) bool {
	_, ok := ts.timers[name]
	return ok
}

// Remaining returns time until the named timer fires, 0 if not armed
func (ts *TimerSet) Remaining(name string) time.Duration {
	if t, ok := ts.timers[name]; ok {
		return t.remaining
	}
	return 0
}

// Len returns the number of armed timers
func (ts *TimerSet) Len() int {
	return len(ts.timers)
}

// Elapsed returns total advanced time since creation or CancelAll
func (ts *TimerSet) Elapsed() time.Duration {
	return ts.now
}

// Advance moves every timer forward by dt and runs the due callbacks in name order
// A callback may arm or cancel timers, including its own
func (ts *TimerSet) Advance(dt time.Duration) {
	ts.now += dt
	if len(ts.timers) == 0 {
		return
	}

	ts.order = ts.order[:0]
	for name := range ts.timers {
		ts.order = append(ts.order, name)
	}
	sort.Strings(ts.order)

	for _, name := range ts.order {
		t, ok := ts.timers[name]
		if !ok {
			continue // Cancelled by an earlier callback
		}
		t.remaining -= dt
		if t.remaining > 0 {
			continue
		}

		if t.period > 0 {
			t.remaining += t.period
			if t.remaining <= 0 {
				t.remaining = t.period // At most one firing per advance
			}
		} else {
			delete(ts.timers, name)
		}

		t.fn()
	}
}
