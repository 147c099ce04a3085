package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tree-of-realms/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"e", runeKey('e'), core.ActionSwitchWeapon, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwitchWeapon, false},
		{"f", runeKey('f'), core.ActionAttack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldKeyLatch(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('d'), &frame)
	frame.Clear()

	for i := range holdTicks {
		km.ApplyHeld(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: Right not held", i)
		}
		frame.Clear()
	}

	km.ApplyHeld(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("Right still held after latch expired")
	}
}

func TestOppositeKeyReleasesLatch(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('a'), &frame)
	km.MapKeyToFrame(runeKey('d'), &frame)

	if km.Held(core.ActionLeft) {
		t.Error("Left should be released when Right is pressed")
	}
	if !km.Held(core.ActionRight) {
		t.Error("Right should be held")
	}
}

func TestEdgeActionsAreNotLatched(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('e'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame)
	if !frame.Has(core.ActionSwitchWeapon) || !frame.Has(core.ActionJump) {
		t.Fatal("actions should be set on the current frame")
	}

	frame.Clear()
	km.ApplyHeld(&frame)
	if frame.Has(core.ActionSwitchWeapon) || frame.Has(core.ActionJump) {
		t.Error("edge actions must not repeat on later ticks")
	}
}

func TestWeaponToggleIgnoresKeyRepeat(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('e'), &frame)
	if !frame.Has(core.ActionSwitchWeapon) {
		t.Fatal("first press should toggle")
	}

	// Auto-repeats keep arriving while the key is held.
	for range 3 * toggleTicks {
		frame.Clear()
		km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyTab}, &frame)
		if frame.Has(core.ActionSwitchWeapon) {
			t.Fatal("repeated toggle should be dropped")
		}
		km.ApplyHeld(&frame)
	}

	// Released: the quiet period runs out.
	for range toggleTicks {
		frame.Clear()
		km.ApplyHeld(&frame)
	}
	frame.Clear()
	km.MapKeyToFrame(runeKey('e'), &frame)
	if !frame.Has(core.ActionSwitchWeapon) {
		t.Error("a fresh press after the quiet period should toggle")
	}

	km.Release()
	frame.Clear()
	km.MapKeyToFrame(runeKey('e'), &frame)
	if !frame.Has(core.ActionSwitchWeapon) {
		t.Error("Release should clear the toggle guard")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('w'), &frame)
	km.Release()
	if km.Held(core.ActionUp) {
		t.Error("Release should drop latches")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	var p core.Pointer

	km.MapMouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &p)
	if p != (core.Pointer{X: 10, Y: 5, Down: true, Valid: true}) {
		t.Errorf("after press: %+v", p)
	}

	km.MapMouse(tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &p)
	if !p.Down || p.X != 12 || p.Y != 6 {
		t.Errorf("drag should keep button down and move: %+v", p)
	}

	km.MapMouse(tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionRelease}, &p)
	if p.Down {
		t.Error("release should lift the button")
	}

	km.MapMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &p)
	if p.Down {
		t.Error("right button should not attack")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
