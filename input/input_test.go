package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var testBounds = Bounds{MinX: 20, MaxX: 580, MinY: 20, MaxY: 660}

func TestNextPosition(t *testing.T) {
	tests := []struct {
		name      string
		frame     Frame
		touchMode bool
		wantX     float64
		wantY     float64
	}{
		{"idle keeps position", Frame{}, false, 300, 500},
		{"pointer sets position", Frame{HasPointer: true, PointerX: 100, PointerY: 200}, false, 100, 200},
		{"key overrides pointer axis", Frame{HasPointer: true, PointerX: 100, PointerY: 200, Left: true}, false, 295, 200},
		{"diagonal keys", Frame{Right: true, Down: true}, false, 305, 505},
		{"pointer clamped", Frame{HasPointer: true, PointerX: -50, PointerY: 900}, false, 20, 660},
		{"touch follows finger", Frame{Touching: true, TouchX: 10, TouchY: 400}, true, 20, 400},
		{"touch ignores keys", Frame{Left: true}, true, 300, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NextPosition(300, 500, 5, tt.frame, tt.touchMode, testBounds)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestStateKeyboardDropsPointer(t *testing.T) {
	s := NewState()
	s.SetPointer(10, 10)
	s.KeyDown(IntentMoveUp)
	f := s.Frame()
	if f.HasPointer || !f.Up {
		t.Errorf("frame = %+v, want keyboard control", f)
	}
	s.KeyDown(IntentBomb) // Not a held key
	s.KeyUp(IntentMoveUp)
	if s.Frame().Up {
		t.Error("KeyUp did not release")
	}
}

func TestStateTouchLifecycle(t *testing.T) {
	s := NewState()
	s.TouchMove(5, 5)
	if s.Frame().Touching {
		t.Fatal("move without start should not touch")
	}
	s.TouchStart(100, 300)
	s.TouchMove(120, 310)
	f := s.Frame()
	if !f.Touching || f.TouchX != 120 || f.TouchY != 310 {
		t.Errorf("frame = %+v", f)
	}
	s.TouchEnd()
	if s.Frame().Touching {
		t.Error("touch should end")
	}
}

func TestKeyTableResolveAndOverride(t *testing.T) {
	kt := DefaultKeyTable()
	if kt.Resolve(tcell.KeyEscape, 0) != IntentPause {
		t.Error("Escape should pause")
	}
	if kt.Resolve(tcell.KeyRune, 'P') != IntentPause {
		t.Error("P should pause")
	}

	err := kt.ApplyOverrides(map[string][]string{
		"bomb":      {"x"},
		"move_left": {"left", "h"},
		"pause":     {"space"},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if kt.Resolve(tcell.KeyRune, 'x') != IntentBomb || kt.Resolve(tcell.KeyRune, 'h') != IntentMoveLeft {
		t.Error("override not applied")
	}
	if kt.Resolve(tcell.KeyRune, ' ') != IntentPause {
		t.Error("space alias not applied")
	}

	if err := kt.ApplyOverrides(map[string][]string{"fly": {"f"}}); err == nil {
		t.Error("unknown action should fail")
	}
	if err := kt.ApplyOverrides(map[string][]string{"bomb": {"xx"}}); err == nil {
		t.Error("multi-rune key should fail")
	}
}

func TestHoldTracker(t *testing.T) {
	s := NewState()
	h := NewHoldTracker(s, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(IntentMoveLeft, t0)
	h.Expire(t0.Add(50 * time.Millisecond))
	if !s.Frame().Left {
		t.Fatal("key released inside window")
	}

	h.Press(IntentMoveRight, t0.Add(60*time.Millisecond))
	f := s.Frame()
	if f.Left || !f.Right {
		t.Errorf("opposite press should release left: %+v", f)
	}

	h.Expire(t0.Add(200 * time.Millisecond))
	if s.Frame().Right || h.Held() != 0 {
		t.Error("key not released after window")
	}
}

func TestParseIntent(t *testing.T) {
	for i := IntentNone; i < intentCount; i++ {
		got, ok := ParseIntent(i.String())
		if !ok || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, ok)
		}
	}
}
