package input

import "sync"

// State is the normalized input fed by the terminal goroutine and read once per tick
// Callers exclude UI-region touches before calling TouchStart/TouchMove
type State struct {
	mu sync.Mutex

	pointerX, pointerY float64
	hasPointer         bool

	held [intentCount]bool

	touchX, touchY float64
	touching       bool
}

// Frame is a consistent copy of the input state for one tick
type Frame struct {
	PointerX, PointerY float64
	HasPointer         bool

	Left, Right, Up, Down bool

	TouchX, TouchY float64
	Touching       bool
}

func NewState() *State {
	return &State{}
}

// SetPointer records an absolute pointer position in world coordinates
func (s *State) SetPointer(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerX, s.pointerY = x, y
	s.hasPointer = true
}

// ClearPointer forgets the pointer so the ship stays where the keys left it
func (s *State) ClearPointer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasPointer = false
}

// KeyDown marks a movement intent as held; other intents are ignored
// Pressing a direction switches from pointer to keyboard control
func (s *State) KeyDown(i IntentType) {
	if !i.IsMovement() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[i] = true
	s.hasPointer = false
}

func (s *State) KeyUp(i IntentType) {
	if !i.IsMovement() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[i] = false
}

// ReleaseAll clears every held key, used when focus or the session changes
func (s *State) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [intentCount]bool{}
	s.touching = false
}

func (s *State) TouchStart(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchX, s.touchY = x, y
	s.touching = true
}

func (s *State) TouchMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.touching {
		return
	}
	s.touchX, s.touchY = x, y
}

func (s *State) TouchEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touching = false
}

// Frame returns the current state
func (s *State) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Frame{
		PointerX:   s.pointerX,
		PointerY:   s.pointerY,
		HasPointer: s.hasPointer,
		Left:       s.held[IntentMoveLeft],
		Right:      s.held[IntentMoveRight],
		Up:         s.held[IntentMoveUp],
		Down:       s.held[IntentMoveDown],
		TouchX:     s.touchX,
		TouchY:     s.touchY,
		Touching:   s.touching,
	}
}
