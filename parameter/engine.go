package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 60

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = time.Second / TickRate

	// TickSeconds is the fixed simulated time advanced by one tick, in seconds
	TickSeconds = 1.0 / TickRate

	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS in a terminal)
	FrameUpdateInterval = 33 * time.Millisecond

	// PausedSleepMultiplier stretches the scheduler sleep while not playing
	PausedSleepMultiplier = 2
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// MaxDispatchPasses bounds how many times one tick drains the event queue
// Events pushed by handlers during dispatch are delivered in the same tick up to this depth
const MaxDispatchPasses = 4

// KeyHoldWindow releases a movement key not repeated within this window
// Terminals report presses only, so a held key is inferred from auto-repeat
const KeyHoldWindow = 300 * time.Millisecond
