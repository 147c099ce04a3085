package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tree-of-realms/internal/core"
)

// holdTicks is how long a key press keeps a movement action held.
// Terminals deliver key repeats but never key releases, so a held key
// is approximated by a latch refreshed on every repeat.
const holdTicks = 8

// toggleTicks is the quiet period a weapon toggle needs before another
// toggle counts. It outlasts a terminal's initial auto-repeat delay.
const toggleTicks = 4 * holdTicks

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	held map[core.Action]int
	// toggleQuiet counts down after a weapon toggle; repeats reset it.
	toggleQuiet int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{held: make(map[core.Action]int)}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "e", "tab":
		return core.ActionSwitchWeapon, false
	case "f", "j":
		return core.ActionAttack, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Movement and attack keys are latched for holdTicks ticks. A weapon toggle
// arriving within toggleTicks of the previous one is an auto-repeat and is
// dropped.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	if action == core.ActionSwitchWeapon {
		repeat := km.toggleQuiet > 0
		km.toggleQuiet = toggleTicks
		if repeat {
			return isQuit
		}
	}
	frame.Set(action)
	if holdable(action) {
		km.held[action] = holdTicks
		if opp, ok := opposite(action); ok {
			delete(km.held, opp)
		}
	}
	return isQuit
}

// ApplyHeld sets every latched action on the frame and ages the latches.
// Call once per tick before stepping the game.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame) {
	if km.toggleQuiet > 0 {
		km.toggleQuiet--
	}
	for a, n := range km.held {
		frame.Set(a)
		if n <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = n - 1
		}
	}
}

// Held reports whether an action is currently latched.
func (km *KeyMapper) Held(a core.Action) bool {
	return km.held[a] > 0
}

// Release drops all latched actions.
func (km *KeyMapper) Release() {
	clear(km.held)
	km.toggleQuiet = 0
}

// MapMouse updates pointer state from a mouse message.
// Only the left button counts as the attack button.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, p *core.Pointer) {
	p.X, p.Y = msg.X, msg.Y
	p.Valid = true
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.Down = true
		}
	case tea.MouseActionRelease:
		p.Down = false
	}
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionAttack:
		return true
	}
	return false
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
