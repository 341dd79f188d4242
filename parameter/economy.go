package parameter

import "time"

// Shop Prices
const (
	// CostFireRate is the price of a fire-rate upgrade
	CostFireRate = 100

	// CostDamage is the price of a damage upgrade
	CostDamage = 150

	// CostShield is the price of a purchased shield
	CostShield = 200
)

// Leaderboard Limits
const (
	// LeaderboardNameMaxLen is the stored name length cap
	LeaderboardNameMaxLen = 20

	// LeaderboardMaxScore is the stored score cap
	LeaderboardMaxScore = 999_999_999

	// LeaderboardPreviewSize is the number of entries shown on the title screen
	LeaderboardPreviewSize = 5
)

// SubmitTimeout bounds one leaderboard submission
const SubmitTimeout = 5 * time.Second
