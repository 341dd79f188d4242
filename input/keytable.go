package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	Keys  map[tcell.Key]IntentType
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings: arrows or WASD to move, Escape/P to pause
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentPause,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
		},
		Runes: map[rune]IntentType{
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			'w': IntentMoveUp,
			's': IntentMoveDown,
			'p': IntentPause,
			'P': IntentPause,
			'r': IntentReturnToBase,
			'1': IntentUpgradeFireRate,
			'2': IntentUpgradeDamage,
			'3': IntentBuyShield,
			'b': IntentBomb,
			' ': IntentBomb,
			'm': IntentToggleMute,
		},
	}
}

// Resolve returns the intent bound to a key event
func (kt *KeyTable) Resolve(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}

// specialKeyNames are the non-rune key names accepted in keymap config
var specialKeyNames = map[string]tcell.Key{
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// ApplyOverrides rebinds keys from a config map of action name to key names
// A binding replaces any existing binding of the same key
func (kt *KeyTable) ApplyOverrides(bindings map[string][]string) error {
	for action, keys := range bindings {
		intent, ok := ParseIntent(action)
		if !ok {
			return fmt.Errorf("keymap: unknown action '%s'", action)
		}
		for _, name := range keys {
			if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
				kt.Keys[k] = intent
				continue
			}
			if r, ok := runeAliases[strings.ToLower(name)]; ok {
				kt.Runes[r] = intent
				continue
			}
			runes := []rune(name)
			if len(runes) != 1 {
				return fmt.Errorf("keymap: action '%s': invalid key '%s'", action, name)
			}
			kt.Runes[runes[0]] = intent
		}
	}
	return nil
}
