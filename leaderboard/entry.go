package leaderboard

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/stellar-assault/parameter"
)

const (
	// MaxNameLen caps stored names in runes
	MaxNameLen = parameter.LeaderboardNameMaxLen
	// MaxScore caps stored scores
	MaxScore = parameter.LeaderboardMaxScore
)

// Entry is one stored leaderboard record
type Entry struct {
	ID    string    `json:"id" msgpack:"id"`
	Name  string    `json:"name" msgpack:"name"`
	Score int       `json:"score" msgpack:"score"`
	Date  time.Time `json:"date" msgpack:"date"`
}

// SanitizeName trims whitespace and caps the name at MaxNameLen runes
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return string([]rune(name)[:MaxNameLen])
}

// ClampScore bounds score to [0, MaxScore]
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// sortEntries orders by score descending; ties go to the earlier entry
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
