package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
	// DefaultMasterVolume is the output gain before per-effect volumes
	DefaultMasterVolume = 0.5
	// MinSoundGap drops repeats of the same effect closer than this
	MinSoundGap = 40 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 250 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 200 * time.Millisecond
)

// Hit Sound
const (
	HitSoundDuration = 300 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 120 * time.Millisecond
)

// Shield Block Sound
const (
	BlockSoundDuration = 220 * time.Millisecond
	BlockSoundAttack   = 3 * time.Millisecond
	BlockSoundRelease  = 180 * time.Millisecond
)

// Pickup Sound (three rising notes)
const (
	PickupNoteDuration = 70 * time.Millisecond
	PickupNoteAttack   = 3 * time.Millisecond
	PickupNoteRelease  = 30 * time.Millisecond
)

// Bomb Sound
const (
	BombSoundDuration = 700 * time.Millisecond
	BombSoundAttack   = 10 * time.Millisecond
	BombSoundRelease  = 550 * time.Millisecond
)

// Upgrade Sound (two-note chime)
const (
	UpgradeNoteDuration = 90 * time.Millisecond
	UpgradeNoteAttack   = 3 * time.Millisecond
	UpgradeNoteRelease  = 50 * time.Millisecond
)

// Game Over Sound (three falling notes)
const (
	GameOverNoteDuration = 250 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 150 * time.Millisecond
)
