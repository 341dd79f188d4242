package parameter

// Kill Rewards
const (
	ScoreNormal = 100
	ScoreFast   = 150
	ScoreElite  = 250

	CreditsNormal = 10
	CreditsFast   = 15
	CreditsElite  = 25
)

// Lives
const (
	// ContactDamage is the number of lives lost on an unshielded enemy contact
	ContactDamage = 1
)
