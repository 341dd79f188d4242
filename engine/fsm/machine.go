package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stellar-assault/event"
)

// Machine is a flat event-driven state machine
// T is the context passed to guards and actions (e.g. *engine.World)
// Not safe for concurrent use; callers hold the world lock
type Machine[T any] struct {
	nodes   []*Node[T]
	byName  map[string]StateID
	initial StateID
	active  StateID

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	inTransition bool
}

func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		byName:    make(map[string]StateID),
		initial:   StateNone,
		active:    StateNone,
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a named predicate, must be called before LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a named side effect, must be called before LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// LoadConfig parses a TOML graph, resolving states, events, guards and actions
// Clears any previously loaded graph
func (m *Machine[T]) LoadConfig(data []byte) error {
	var cfg RootConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return fmt.Errorf("decode fsm config: %w", err)
	}
	if len(cfg.States) == 0 {
		return fmt.Errorf("fsm config has no states")
	}

	m.nodes = m.nodes[:0]
	m.byName = make(map[string]StateID)
	m.active = StateNone

	// Sorted for deterministic IDs
	names := make([]string, 0, len(cfg.States))
	for name := range cfg.States {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		m.byName[name] = StateID(i)
		m.nodes = append(m.nodes, &Node[T]{ID: StateID(i), Name: name})
	}

	for _, name := range names {
		sc := cfg.States[name]
		if sc == nil {
			continue
		}
		node := m.nodes[m.byName[name]]

		var err error
		if node.OnEnter, err = m.resolveActions(sc.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.resolveActions(sc.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range sc.Transitions {
			t, err := m.resolveTransition(tc)
			if err != nil {
				return fmt.Errorf("state '%s': %w", name, err)
			}
			node.Transitions = append(node.Transitions, t)
		}
	}

	id, ok := m.byName[cfg.Initial]
	if !ok {
		return fmt.Errorf("initial state '%s' not defined", cfg.Initial)
	}
	m.initial = id
	return nil
}

func (m *Machine[T]) resolveTransition(tc TransitionConfig) (Transition[T], error) {
	var t Transition[T]

	ev, ok := event.ParseEventType(tc.Trigger)
	if !ok {
		return t, fmt.Errorf("unknown trigger '%s'", tc.Trigger)
	}
	target, ok := m.byName[tc.Target]
	if !ok {
		return t, fmt.Errorf("unknown target '%s'", tc.Target)
	}
	t.Event = ev
	t.Target = target

	if tc.Guard != "" {
		g, ok := m.guardReg[tc.Guard]
		if !ok {
			return t, fmt.Errorf("unknown guard '%s'", tc.Guard)
		}
		t.Guard = g
	}

	actions, err := m.resolveActions(tc.Actions)
	if err != nil {
		return t, err
	}
	t.Actions = actions
	return t, nil
}

func (m *Machine[T]) resolveActions(cfgs []ActionConfig) ([]Action[T], error) {
	if len(cfgs) == 0 {
		return nil, nil
	}
	out := make([]Action[T], 0, len(cfgs))
	for _, ac := range cfgs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s'", ac.Action)
		}
		out = append(out, Action[T]{Name: ac.Action, Func: fn, Arg: ac.Arg})
	}
	return out, nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	if m.initial == StateNone {
		return fmt.Errorf("fsm not loaded")
	}
	m.active = m.initial
	run(ctx, event.GameEvent{}, m.nodes[m.active].OnEnter)
	return nil
}

// HandleEvent fires the first matching transition of the active state
// Returns true if a transition occurred
// Events raised synchronously from inside an action are ignored
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	if m.active == StateNone || m.inTransition {
		return false
	}

	node := m.nodes[m.active]
	for _, t := range node.Transitions {
		if t.Event != ev.Type {
			continue
		}
		if t.Guard != nil && !t.Guard(ctx, ev) {
			continue
		}

		m.inTransition = true
		run(ctx, ev, node.OnExit)
		run(ctx, ev, t.Actions)
		m.active = t.Target
		run(ctx, ev, m.nodes[t.Target].OnEnter)
		m.inTransition = false
		return true
	}
	return false
}

// Reset returns to the initial state without running exit actions
func (m *Machine[T]) Reset(ctx T) error {
	return m.Init(ctx)
}

// State returns the active state name, empty if uninitialized
func (m *Machine[T]) State() string {
	if m.active == StateNone {
		return ""
	}
	return m.nodes[m.active].Name
}

// StateID returns the active state ID
func (m *Machine[T]) StateID() StateID {
	return m.active
}

// Lookup returns the ID for a state name
func (m *Machine[T]) Lookup(name string) (StateID, bool) {
	id, ok := m.byName[name]
	return id, ok
}

func run[T any](ctx T, ev event.GameEvent, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, ev, a.Arg)
	}
}
