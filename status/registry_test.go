package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("combat.kills")
	b := r.Ints.Get("combat.kills")
	if a != b {
		t.Fatal("Get should return the same pointer for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("shared counter = %d, want 3", b.Load())
	}
	if !r.Ints.Has("combat.kills") || r.Ints.Has("combat.hits") {
		t.Error("Has reports wrong registration state")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("volume").Add(0.5)
		}()
	}
	wg.Wait()
	if got := m.Get("volume").Get(); got != 8 {
		t.Errorf("volume = %v, want 8", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestResetIntsAndSummary(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("session.score").Store(1200)
	r.Ints.Get("engine.ticks").Store(60)
	r.Strings.Get("session.phase").Store("playing")

	s := r.Summary()
	if !strings.HasPrefix(s, "engine.ticks=60 session.score=1200") {
		t.Errorf("Summary() = %q, ints should come first in key order", s)
	}
	if !strings.Contains(s, `session.phase="playing"`) {
		t.Errorf("Summary() = %q, missing phase", s)
	}

	r.ResetInts()
	if r.Ints.Get("session.score").Load() != 0 {
		t.Error("ResetInts should zero counters")
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", r.TotalCount())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should read empty")
	}
	s.Store(strings.Repeat("X", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}
