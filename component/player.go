package component

// PlayerComponent is the ship controlled by the pilot
// Exactly one exists per session; position is the sprite centre
type PlayerComponent struct {
	X, Y  float64
	Speed float64
}
