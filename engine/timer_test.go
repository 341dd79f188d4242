package engine

import (
	"testing"
	"time"
)

func TestTimerSetOneShot(t *testing.T) {
	ts := NewTimerSet()
	fired := 0
	ts.After("shield", 50*time.Millisecond, func() { fired++ })

	ts.Advance(30 * time.Millisecond)
	if fired != 0 || !ts.Active("shield") {
		t.Fatal("timer fired early")
	}
	if got := ts.Remaining("shield"); got != 20*time.Millisecond {
		t.Errorf("Remaining = %v, want 20ms", got)
	}

	ts.Advance(30 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if ts.Active("shield") {
		t.Error("one-shot timer should disarm after firing")
	}

	ts.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired again: %d", fired)
	}
}

func TestTimerSetRearmReplaces(t *testing.T) {
	ts := NewTimerSet()
	var got []string
	ts.After("shield", 100*time.Millisecond, func() { got = append(got, "first") })
	ts.Advance(60 * time.Millisecond)
	ts.After("shield", 100*time.Millisecond, func() { got = append(got, "second") })

	ts.Advance(60 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("replaced timer fired: %v", got)
	}
	ts.Advance(40 * time.Millisecond)
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("fired = %v, want [second]", got)
	}
}

func TestTimerSetEvery(t *testing.T) {
	ts := NewTimerSet()
	count := 0
	ts.Every("fire", 300*time.Millisecond, func() { count++ })

	step := time.Second / 60
	for i := 0; i < 60; i++ {
		ts.Advance(step)
	}
	// One second at 300ms cadence
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestTimerSetCancel(t *testing.T) {
	ts := NewTimerSet()
	fired := false
	ts.After("shield", 10*time.Millisecond, func() { fired = true })
	if !ts.Cancel("shield") {
		t.Fatal("Cancel should report an armed timer")
	}
	if ts.Cancel("shield") {
		t.Error("second Cancel should report nothing armed")
	}
	ts.Advance(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestTimerSetCancelAllAndCallbackCancel(t *testing.T) {
	ts := NewTimerSet()
	var order []string
	ts.After("a", 10*time.Millisecond, func() {
		order = append(order, "a")
		ts.Cancel("b")
	})
	ts.After("b", 10*time.Millisecond, func() { order = append(order, "b") })
	ts.Advance(10 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("order = %v, want [a]", order)
	}

	ts.Every("c", time.Millisecond, func() {})
	ts.CancelAll()
	if ts.Len() != 0 || ts.Elapsed() != 0 {
		t.Errorf("CancelAll left %d timers, elapsed %v", ts.Len(), ts.Elapsed())
	}
}
