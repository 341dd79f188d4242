package parameter

// Spawn Policy
const (
	// SpawnRateNormal is the per-tick probability of a single enemy spawn
	SpawnRateNormal = 0.03

	// SpawnRateHard is the per-tick spawn probability once the score passes HardModeScore
	SpawnRateHard = 0.05

	// HardModeScore is the score above which elite enemies and waves unlock
	HardModeScore = 30000

	// DifficultyScoreStep is the score per difficulty tier
	DifficultyScoreStep = 1000

	// NormalHPScoreStep is the score per extra hit point of a normal/fast enemy
	NormalHPScoreStep = 500

	// EliteChance is the chance that a hard-mode spawn is elite
	EliteChance = 0.3

	// FastThreshold is the roll above which a non-elite enemy is fast (70/30 split)
	FastThreshold = 0.7

	// WaveChance is the per-tick probability of a multi-enemy wave in hard mode
	WaveChance = 0.02

	// WaveMinSize is the smallest wave
	WaveMinSize = 2

	// WaveSizeSpread is the number of extra sizes above WaveMinSize (2..4)
	WaveSizeSpread = 3

	// WaveRowStagger is the vertical distance between consecutive wave members
	WaveRowStagger = 50.0

	// WaveEliteChance is the chance that a wave member is elite (otherwise fast)
	WaveEliteChance = 0.5
)

// Spawn Geometry
const (
	// SpawnY is the vertical spawn line just above the field
	SpawnY = -40.0

	// SpawnEdgeMargin keeps single spawns away from the side edges
	SpawnEdgeMargin = 30.0

	// WobbleMax is the upper bound of the wobble amplitude
	WobbleMax = 2.0

	// WobbleFrequency scales y before the sinusoidal drift
	WobbleFrequency = 0.02
)

// Enemy Speeds (units per tick): base + U*spread + difficulty*perTier
const (
	NormalSpeedBase    = 1.5
	NormalSpeedSpread  = 1.5
	NormalSpeedPerTier = 0.3

	EliteSpeedBase    = 2.5
	EliteSpeedSpread  = 2.0
	EliteSpeedPerTier = 0.4

	WaveSpeedBase    = 2.0
	WaveSpeedSpread  = 1.5
	WaveSpeedPerTier = 0.3
)

// Enemy Hit Points
const (
	// NormalBaseHP is added to floor(score/NormalHPScoreStep)
	NormalBaseHP = 1

	// EliteBaseHP is added to the difficulty tier
	EliteBaseHP = 3

	// WaveBaseHP is added to the difficulty tier
	WaveBaseHP = 2
)
