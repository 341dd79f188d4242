package fsm

import "github.com/lixenwraith/stellar-assault/event"

// StateID is a dense index into the machine's state table
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = -1

// GuardFunc returns true if the transition may occur
type GuardFunc[T any] func(ctx T, ev event.GameEvent) bool

// ActionFunc executes a side effect; arg is the optional string from config
type ActionFunc[T any] func(ctx T, ev event.GameEvent, arg string)

// Action is a resolved action reference
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Arg  string
}

// Transition links a source state to a target on a specific event
type Transition[T any] struct {
	Event   event.EventType
	Target  StateID
	Guard   GuardFunc[T] // nil = always
	Actions []Action[T]  // Run between exit and enter
}

// Node is a single state
type Node[T any] struct {
	ID          StateID
	Name        string
	OnEnter     []Action[T]
	OnExit      []Action[T]
	Transitions []Transition[T]
}
