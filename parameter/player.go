package parameter

// Player Movement
const (
	// PlayerSpeed is the keyboard movement step per tick
	PlayerSpeed = 5.0

	// PlayerStartOffsetY is the distance of the spawn point above the bottom edge
	PlayerStartOffsetY = 80.0

	// PlayerEdgeMargin is the horizontal and desktop top clamp margin
	PlayerEdgeMargin = 20.0

	// PlayerTouchTopBoundary keeps the ship below the HUD in touch mode
	PlayerTouchTopBoundary = 140.0
)

// Session Defaults
const (
	// InitialLives is the number of lives at session start
	InitialLives = 3

	// PlayerNameMaxLen is the display length limit of a pilot name
	PlayerNameMaxLen = 12
)
