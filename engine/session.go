package engine

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/stellar-assault/component"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// Phase is the session lifecycle state
type Phase uint8

const (
	PhaseNameEntry Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNameEntry:
		return "name_entry"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ParsePhase maps a lifecycle state name to a Phase
func ParsePhase(s string) (Phase, bool) {
	for p := PhaseNameEntry; p <= PhaseGameOver; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// Session holds the scalars of one play session
// Zeroed and re-initialized on every start from name entry
type Session struct {
	Phase Phase
	Name  string

	Score   int
	Credits int
	Lives   int

	ShieldActive  bool
	BombAvailable bool

	Special     component.WeaponMode
	SpecialTime float64 // Seconds remaining on the special weapon

	FireRate     time.Duration
	BulletDamage int

	Ticks int64 // Playing ticks elapsed
}

// NewSession returns the initial session state for a pilot
func NewSession(name string) Session {
	return Session{
		Name:         name,
		Lives:        parameter.InitialLives,
		FireRate:     parameter.DefaultFireRate,
		BulletDamage: parameter.DefaultBulletDamage,
	}
}

// NormalizePilotName trims, uppercases and truncates a typed name
func NormalizePilotName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if utf8.RuneCountInString(name) > parameter.PlayerNameMaxLen {
		name = string([]rune(name)[:parameter.PlayerNameMaxLen])
	}
	return name
}

// Difficulty is the score tier used by the spawner
func (s *Session) Difficulty() int {
	return s.Score / parameter.DifficultyScoreStep
}

// HardMode is true once the score passes the elite threshold
func (s *Session) HardMode() bool {
	return s.Score > parameter.HardModeScore
}

func (s *Session) CanUpgradeFireRate() bool {
	return s.Credits >= parameter.CostFireRate && s.FireRate > parameter.MinFireRate
}

func (s *Session) CanUpgradeDamage() bool {
	return s.Credits >= parameter.CostDamage
}

func (s *Session) CanBuyShield() bool {
	return s.Credits >= parameter.CostShield && !s.ShieldActive
}

// Elapsed returns playing time derived from the tick count
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.Ticks) * parameter.GameUpdateInterval
}
