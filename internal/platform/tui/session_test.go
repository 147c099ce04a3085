package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(openTestStore(t), testRuntime(), "alice")
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEscape}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	if !strings.Contains(m.View(), "Play Tree of Realms") {
		t.Fatalf("menu should list the game, got %q", m.View())
	}

	m, cmd := sessionUpdate(t, m, enterKey)
	if m.screen != screenSetup {
		t.Fatalf("screen = %v, want setup", m.screen)
	}
	if cmd != nil {
		t.Error("session must swallow the menu's quit command")
	}

	m, _ = sessionUpdate(t, m, enterKey) // Classic
	m, _ = sessionUpdate(t, m, downKey)  // Realm 2
	m, cmd = sessionUpdate(t, m, enterKey)
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("screen = %v, want game with a tick command", m.screen)
	}

	m, _ = sessionUpdate(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Realm 2/5") {
		t.Errorf("game should start in the chosen realm, got %q", m.View())
	}

	m, _ = sessionUpdate(t, m, escKey)
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, _ = sessionUpdate(t, m, escKey)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after leaving a paused game", m.screen)
	}

	if m, cmd = sessionUpdate(t, m, TickMsg{}); cmd != nil || m.screen != screenMenu {
		t.Error("stray ticks should be dropped in the menu")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "TOP SCORES") {
		t.Errorf("scoreboard title missing: %q", m.View())
	}

	m, _ = sessionUpdate(t, m, escKey)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionSetupBack(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionUpdate(t, m, enterKey)
	m, _ = sessionUpdate(t, m, escKey)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after backing out of setup", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
