package fsm

import (
	"strings"
	"testing"

	"github.com/lixenwraith/stellar-assault/event"
)

type doorCtx struct {
	log    []string
	locked bool
}

const doorConfig = `
initial = "closed"

[states.closed]
on_enter = [{ action = "Log", arg = "enter closed" }]

[[states.closed.transitions]]
trigger = "PauseToggle"
target = "open"
guard = "Unlocked"
actions = [{ action = "Log", arg = "swing" }]

[states.open]
on_exit = [{ action = "Log", arg = "exit open" }]

[[states.open.transitions]]
trigger = "PauseToggle"
target = "closed"
`

func newDoor(t *testing.T) (*Machine[*doorCtx], *doorCtx) {
	t.Helper()
	m := NewMachine[*doorCtx]()
	m.RegisterGuard("Unlocked", func(c *doorCtx, _ event.GameEvent) bool { return !c.locked })
	m.RegisterAction("Log", func(c *doorCtx, _ event.GameEvent, arg string) {
		c.log = append(c.log, arg)
	})
	if err := m.LoadConfig([]byte(doorConfig)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ctx := &doorCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, ctx
}

func TestMachineTransitionOrder(t *testing.T) {
	m, ctx := newDoor(t)
	if m.State() != "closed" {
		t.Fatalf("initial state = %q, want closed", m.State())
	}

	toggle := event.GameEvent{Type: event.EventPauseToggle}
	if !m.HandleEvent(ctx, toggle) {
		t.Fatal("toggle should open the door")
	}
	if !m.HandleEvent(ctx, toggle) {
		t.Fatal("toggle should close the door")
	}

	want := "enter closed,swing,exit open,enter closed"
	if got := strings.Join(ctx.log, ","); got != want {
		t.Errorf("action order = %q, want %q", got, want)
	}
}

func TestMachineGuardBlocks(t *testing.T) {
	m, ctx := newDoor(t)
	ctx.locked = true
	if m.HandleEvent(ctx, event.GameEvent{Type: event.EventPauseToggle}) {
		t.Error("guard should block transition")
	}
	if m.State() != "closed" {
		t.Errorf("state = %q, want closed", m.State())
	}
}

func TestMachineIgnoresUnknownEvent(t *testing.T) {
	m, ctx := newDoor(t)
	if m.HandleEvent(ctx, event.GameEvent{Type: event.EventBombRequest}) {
		t.Error("unrelated event should not transition")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"no states", `initial = "x"`, "no states"},
		{"bad initial", "initial = \"nope\"\n[states.a]\n", "initial state"},
		{"bad trigger", "initial = \"a\"\n[[states.a.transitions]]\ntrigger = \"Explode\"\ntarget = \"a\"\n", "unknown trigger"},
		{"bad target", "initial = \"a\"\n[[states.a.transitions]]\ntrigger = \"GameOver\"\ntarget = \"b\"\n", "unknown target"},
		{"bad action", "initial = \"a\"\n[states.a]\non_enter = [{ action = \"Nope\" }]\n", "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*doorCtx]()
			err := m.LoadConfig([]byte(tt.config))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
