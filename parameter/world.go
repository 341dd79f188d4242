package parameter

// Play Field Geometry (world units, origin top-left, y grows downward)
const (
	// GameWidth is the default play field width
	GameWidth = 600.0

	// GameHeight is the default play field height
	GameHeight = 800.0

	// TopPanelHeight is the height reserved for the shop/bomb panel
	TopPanelHeight = 120.0

	// EnemyExitMargin is the distance above the panel where enemies leave the field
	EnemyExitMargin = 150.0

	// BulletBoundMargin is how far outside the field a bullet survives vertically
	BulletBoundMargin = 20.0

	// PowerupExitMargin is how far below the field a powerup survives
	PowerupExitMargin = 50.0
)

// Entity Sizes (used as collision radii)
const (
	// PlayerSize is the ship sprite size and its collision radius
	PlayerSize = 120.0

	// EnemySize is the enemy sprite size and its collision radius
	EnemySize = 35.0

	// BulletSize is the bullet sprite size
	BulletSize = 8.0

	// PowerupSize is the powerup sprite size
	PowerupSize = 25.0
)
