package engine

// System is a unit of per-tick simulation logic
// Systems that react to events also implement event.Handler
type System interface {
	// Init resets per-session state; called on construction and on EventGameReset
	Init()

	// Name identifies the system in logs and telemetry
	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	// Update runs one tick; called under the world lock, only while playing
	Update()
}
