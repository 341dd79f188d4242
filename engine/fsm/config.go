package fsm

// RootConfig is the top-level TOML document describing a machine
type RootConfig struct {
	Initial string                  `toml:"initial"`
	States  map[string]*StateConfig `toml:"states"`
}

// StateConfig describes one state
type StateConfig struct {
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig describes an event-triggered edge
type TransitionConfig struct {
	Trigger string         `toml:"trigger"` // event name, see event.EventType.String
	Target  string         `toml:"target"`
	Guard   string         `toml:"guard"`
	Actions []ActionConfig `toml:"actions"`
}

// ActionConfig references a registered action with an optional argument
type ActionConfig struct {
	Action string `toml:"action"`
	Arg    string `toml:"arg"`
}
