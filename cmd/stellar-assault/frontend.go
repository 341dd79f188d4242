package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/event"
	"github.com/lixenwraith/stellar-assault/input"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/render"
)

// muter is the part of the audio service the key handler needs
type muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// frontend turns terminal events into input state and world commands
// Owned by the UI goroutine
type frontend struct {
	world *engine.World
	input *input.State
	hold  *input.HoldTracker
	keys  *input.KeyTable
	sound muter

	touchMode bool
	mouseDown bool

	phase  engine.Phase
	name   []rune
	layout render.RenderContext
}

func newFrontend(world *engine.World, state *input.State, keys *input.KeyTable, sound muter, pilot string) *frontend {
	f := &frontend{
		world:     world,
		input:     state,
		hold:      input.NewHoldTracker(state, parameter.KeyHoldWindow),
		keys:      keys,
		sound:     sound,
		touchMode: world.TouchMode,
	}
	for _, r := range pilot {
		f.typeRune(r)
	}
	return f
}

// observe records the phase of the latest snapshot; leaving play releases all input
func (f *frontend) observe(phase engine.Phase) {
	if phase == f.phase {
		return
	}
	if phase != engine.PhasePlaying {
		f.input.ReleaseAll()
		f.input.ClearPointer()
		f.mouseDown = false
	}
	f.phase = phase
}

// handleEvent processes one terminal event and reports whether the user quit
func (f *frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune(), ev.When())
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return false
}

func (f *frontend) handleKey(key tcell.Key, r rune, now time.Time) bool {
	if key == tcell.KeyCtrlC {
		return true
	}
	if f.phase == engine.PhaseNameEntry {
		f.handleNameKey(key, r)
		return false
	}

	intent := f.keys.Resolve(key, r)
	switch intent {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		if f.sound != nil {
			f.sound.ToggleMute()
		}
	case input.IntentPause:
		f.world.PushEvent(event.EventPauseToggle, nil)
	case input.IntentReturnToBase:
		f.world.PushEvent(event.EventReturnToBase, nil)
	case input.IntentUpgradeFireRate:
		f.world.PushEvent(event.EventUpgradeFireRateRequest, nil)
	case input.IntentUpgradeDamage:
		f.world.PushEvent(event.EventUpgradeDamageRequest, nil)
	case input.IntentBuyShield:
		f.world.PushEvent(event.EventShieldPurchaseRequest, nil)
	case input.IntentBomb:
		f.world.PushEvent(event.EventBombRequest, nil)
	default:
		if intent.IsMovement() && f.phase == engine.PhasePlaying {
			f.hold.Press(intent, now)
		}
	}
	return false
}

func (f *frontend) handleNameKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEnter:
		name := string(f.name)
		if engine.NormalizePilotName(name) != "" {
			f.world.PushEvent(event.EventGameStart, &event.GameStartPayload{Name: name})
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.name) > 0 {
			f.name = f.name[:len(f.name)-1]
		}
	case tcell.KeyEscape:
		f.name = f.name[:0]
	case tcell.KeyRune:
		f.typeRune(r)
	}
}

func (f *frontend) typeRune(r rune) {
	if unicode.IsPrint(r) && len(f.name) < parameter.PlayerNameMaxLen {
		f.name = append(f.name, r)
	}
}

// handleMouse maps a cell to world coordinates; HUD and border cells are ignored
func (f *frontend) handleMouse(sx, sy int, pressed bool) {
	if f.phase != engine.PhasePlaying {
		return
	}
	x, y, onField := f.layout.ScreenToMap(sx, sy)

	if !f.touchMode {
		if onField {
			f.input.SetPointer(x, y)
		}
		return
	}

	switch {
	case pressed && !f.mouseDown:
		if onField {
			f.input.TouchStart(x, y)
			f.mouseDown = true
		}
	case pressed && f.mouseDown:
		if onField {
			f.input.TouchMove(x, y)
		}
	case !pressed && f.mouseDown:
		f.input.TouchEnd()
		f.mouseDown = false
	}
}

// nameInput is the text shown on the name entry screen
func (f *frontend) nameInput() string {
	return string(f.name)
}

func (f *frontend) muted() bool {
	return f.sound != nil && f.sound.IsMuted()
}
