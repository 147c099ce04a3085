package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
)

// difficultyChoice is one row of the difficulty list.
type difficultyChoice struct {
	preset config.DifficultyPreset
	label  string
}

// The first row is preselected and plays the stock rules.
var difficultyChoices = []difficultyChoice{
	{config.DifficultyFixed, "Classic - stock rules, no progression"},
	{config.DifficultyEasy, "Easy    - slower minions, rare homing"},
	{config.DifficultyNormal, "Normal  - minions grow bolder each realm"},
	{config.DifficultyHard, "Hard    - fast minions, quicker bites"},
}

// RealmsSelection holds the user's choices before a run.
type RealmsSelection struct {
	Preset config.DifficultyPreset
	Level  int // 1-based starting realm
}

// RealmsSetupModel lets users choose difficulty and then the starting realm.
type RealmsSetupModel struct {
	cursor        int
	levelCursor   int
	levelCount    int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     RealmsSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewRealmsSetupModel creates the pre-run setup screen.
// Levels beyond the configured level count are not offered.
func NewRealmsSetupModel(width, height, levelCount int) RealmsSetupModel {
	return RealmsSetupModel{
		cursor:     0, // Classic
		levelCount: max(levelCount, 1),
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m RealmsSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RealmsSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleDifficultyKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m RealmsSetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Preset = difficultyChoices[m.cursor].preset
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m RealmsSetupModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < m.levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Level = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the current step.
func (m RealmsSetupModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText("CHOOSE YOUR STARTING REALM", m.width))
		b.WriteString("\n\n")
		for i := range m.levelCount {
			cursor := "  "
			if i == m.levelCursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%d. %-14s", cursor, i+1, realms.RealmName(i+1))
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("CHOOSE DIFFICULTY", m.width))
		b.WriteString("\n\n")
		for i, c := range difficultyChoices {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+c.label, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m RealmsSetupModel) Selected() *RealmsSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m RealmsSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user backed out of the difficulty list.
func (m RealmsSetupModel) WantsBack() bool {
	return m.back
}

// RunRealmsSetup runs the setup screen and returns the selection.
// A nil selection means the user backed out; quit reports Q or Ctrl+C.
func RunRealmsSetup(cfg core.RuntimeConfig, levelCount int) (*RealmsSelection, bool, error) {
	p := tea.NewProgram(NewRealmsSetupModel(cfg.ScreenW, cfg.ScreenH, levelCount), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(RealmsSetupModel)
	if !ok || m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
