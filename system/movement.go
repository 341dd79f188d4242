package system

import (
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/input"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// MovementSystem moves the ship from the current input frame
type MovementSystem struct {
	world *engine.World
	input *input.State
}

func NewMovementSystem(world *engine.World, state *input.State) engine.System {
	s := &MovementSystem{
		world: world,
		input: state,
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent drops keys held across a restart
func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.input.ReleaseAll()
	}
}

func (s *MovementSystem) Update() {
	w := s.world
	minX, maxX, minY, maxY := w.PlayerBounds()
	w.Player.X, w.Player.Y = input.NextPosition(
		w.Player.X, w.Player.Y, w.Player.Speed,
		s.input.Frame(), w.TouchMode,
		input.Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY},
	)
}
