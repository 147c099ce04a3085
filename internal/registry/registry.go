// Package registry connects games to the hosts that run them. A game
// package registers a factory from init; hosts list and create games by ID
// and drive them through the Game interface.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tree-of-realms/internal/core"
)

// Game is a fixed-step game a host can drive. Implementations hold no
// terminal or window state; the host owns timing, input devices and output.
type Game interface {
	// ID is the stable identifier used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick of cfg.StepDuration.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into dst, which the host has cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// RunStats summarizes a run for the scoreboard.
type RunStats struct {
	Level   int    // Highest level reached
	Kills   int    // Enemies defeated
	Deaths  int    // Times the player was defeated
	Outcome string // "victory" or "quit"
}

// RunReporter is implemented by games that can describe a run beyond
// its score.
type RunReporter interface {
	RunStats() RunStats
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the run.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	games = map[string]entry{}
)

// Register adds a game factory under id. It panics on an empty or
// duplicate id, since both are programming errors.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{title: f().Title(), factory: f}
}

// List returns the registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
